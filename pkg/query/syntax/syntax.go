// Package syntax parses the textual query language:
//
//	Expression = Term+ ;
//	Term       = Sign ( Ident | "(" Expression ")" ) ;
//	Sign       = "+" | "-" ;
//
// Identifiers name backup modules or other named queries; resolving them is
// left to the catalog.
package syntax

import (
	stderrors "errors"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/arthur-debert/fsimage/pkg/errors"
)

// Expression is a parsed sequence of signed terms
type Expression struct {
	Pos   lexer.Position
	Terms []*Term `parser:"@@+"`
}

// Term is a signed identifier or a parenthesized sub-expression
type Term struct {
	Pos   lexer.Position
	Sign  string      `parser:"@Sign"`
	Ident string      `parser:"( @Ident"`
	Sub   *Expression `parser:"| '(' @@ ')' )"`
}

var lex = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.\-]*`},
	{Name: "Sign", Pattern: `[+\-]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Expression](participle.Lexer(lex), participle.Elide("Whitespace"))

// Parse turns query text into an expression tree
func Parse(text string) (*Expression, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.ErrQueryParse, "query is empty").
			WithDetail("query", text)
	}

	expr, err := parser.ParseString("", text)
	if err != nil {
		wrapped := errors.Wrapf(err, errors.ErrQueryParse, "invalid query %q", text).
			WithDetail("query", text)
		var perr participle.Error
		if stderrors.As(err, &perr) {
			wrapped.WithDetail("column", perr.Position().Column)
		}
		return nil, wrapped
	}
	return expr, nil
}

// IsAdd reports whether the term adds to the accumulator
func (t *Term) IsAdd() bool {
	return t.Sign == "+"
}

// String renders the expression in canonical form, one space between terms
func (e *Expression) String() string {
	parts := make([]string, 0, len(e.Terms))
	for _, t := range e.Terms {
		parts = append(parts, t.String())
	}
	return strings.Join(parts, " ")
}

// String renders the term in canonical form
func (t *Term) String() string {
	if t.Sub != nil {
		return t.Sign + "(" + t.Sub.String() + ")"
	}
	return t.Sign + t.Ident
}

// Idents returns every identifier referenced by the expression, nested ones
// included, in order of appearance
func (e *Expression) Idents() []string {
	var out []string
	for _, t := range e.Terms {
		if t.Sub != nil {
			out = append(out, t.Sub.Idents()...)
			continue
		}
		out = append(out, t.Ident)
	}
	return out
}
