package query

import (
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/pathset"
)

// Producer reports the paths a backup module accounts for
type Producer interface {
	Produce() (*pathset.Set, error)
}

// ProducerFunc adapts a plain function to Producer
type ProducerFunc func() (*pathset.Set, error)

// Produce calls f
func (f ProducerFunc) Produce() (*pathset.Set, error) {
	return f()
}

// Sign says whether a term is added to or removed from the accumulator
type Sign int

const (
	// Add merges the term into the accumulator
	Add Sign = iota
	// Subtract removes the term from the accumulator
	Subtract
)

// String returns the sign character used in query text
func (s Sign) String() string {
	if s == Subtract {
		return "-"
	}
	return "+"
}

// Term is one signed operand of an expression. Exactly one of Producer and
// Sub is set; Name is used in logs and errors.
type Term struct {
	Sign     Sign
	Name     string
	Producer Producer
	Sub      Expression
}

// Expression is an ordered list of terms folded left to right
type Expression []Term

// String renders the expression by term names; nested expressions without
// a name are rendered in parentheses
func (e Expression) String() string {
	out := ""
	for i, t := range e {
		if i > 0 {
			out += " "
		}
		out += t.Sign.String() + t.label()
	}
	return out
}

// Options controls how strictly terms are combined
type Options struct {
	// AllowDuplicateAddition lets an added set overlap the accumulator
	AllowDuplicateAddition bool
	// AllowNonpresentSubtraction ignores removed paths the accumulator does not hold
	AllowNonpresentSubtraction bool
}

func (o Options) policy() pathset.Policy {
	if o.AllowNonpresentSubtraction {
		return pathset.Relaxed
	}
	return pathset.Strict
}

// Evaluate folds expr into a single set starting from the empty set
func Evaluate(opts Options, expr Expression) (*pathset.Set, error) {
	done := logging.LogOperationStart(logging.GetLogger("query.evaluate"), "evaluate "+expr.String())
	defer done()

	return evaluate(opts, expr)
}

func evaluate(opts Options, expr Expression) (*pathset.Set, error) {
	logger := logging.GetLogger("query.evaluate")
	acc := pathset.Empty()

	for _, term := range expr {
		produced, err := produce(opts, term)
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Str("term", term.Sign.String()+term.label()).
			Int("terminals", produced.Len()).
			Msg("applying term")

		switch term.Sign {
		case Add:
			if !opts.AllowDuplicateAddition {
				if dup, ok := pathset.Overlap(acc, produced); ok {
					return nil, errors.Newf(errors.ErrDuplicateAddition,
						"%s is already included when adding %s", dup, term.label()).
						WithDetail(errors.DetailPath, dup.String()).
						WithDetail("term", term.label())
				}
			}
			acc, err = acc.Union(produced)
		case Subtract:
			acc, err = acc.Difference(produced, opts.policy())
		default:
			return nil, errors.Newf(errors.ErrInternal, "unknown sign %d for term %s", term.Sign, term.label())
		}
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// produce invokes the term's producer exactly once, or evaluates its
// nested expression with the same options
func produce(opts Options, term Term) (*pathset.Set, error) {
	if term.Producer == nil {
		if term.Sub == nil {
			return nil, errors.Newf(errors.ErrInternal, "term %s has neither a producer nor a sub-expression", term.label())
		}
		return evaluate(opts, term.Sub)
	}

	set, err := term.Producer.Produce()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrModuleProduce, "module %s failed to produce its paths", term.label()).
			WithDetail("term", term.label())
	}
	if set == nil {
		return pathset.Empty(), nil
	}
	return set, nil
}

func (t Term) label() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Producer == nil {
		return "(" + t.Sub.String() + ")"
	}
	return "<unnamed>"
}
