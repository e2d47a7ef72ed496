package syntax_test

import (
	"testing"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/query/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		idents []string
	}{
		{"single term", "+etc", "+etc", []string{"etc"}},
		{"drift query", "+everything -etc -home", "+everything -etc -home", []string{"everything", "etc", "home"}},
		{"no spaces", "+everything-etc", "+everything-etc", []string{"everything-etc"}},
		{"extra whitespace", "  +a\t -b\n", "+a -b", []string{"a", "b"}},
		{"dotted and dashed names", "+pkg.db -my-cache_1", "+pkg.db -my-cache_1", []string{"pkg.db", "my-cache_1"}},
		{"nested", "+a -(+b -c)", "+a -(+b -c)", []string{"a", "b", "c"}},
		{"deeply nested", "+(+(+a))", "+(+(+a))", []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := syntax.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.String())
			assert.Equal(t, tt.idents, expr.Idents())
		})
	}
}

func TestParse_TermShape(t *testing.T) {
	expr, err := syntax.Parse("+a -(+b)")
	require.NoError(t, err)
	require.Len(t, expr.Terms, 2)

	assert.True(t, expr.Terms[0].IsAdd())
	assert.Equal(t, "a", expr.Terms[0].Ident)
	assert.Nil(t, expr.Terms[0].Sub)

	assert.False(t, expr.Terms[1].IsAdd())
	require.NotNil(t, expr.Terms[1].Sub)
	assert.Equal(t, "b", expr.Terms[1].Sub.Terms[0].Ident)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing sign", "etc"},
		{"sign without operand", "+"},
		{"unclosed group", "+(+a"},
		{"empty group", "+()"},
		{"stray paren", "+a )"},
		{"bad character", "+a *b"},
		{"name starting with digit", "+1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := syntax.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrQueryParse), "got %v", err)
			assert.Equal(t, tt.input, errors.GetErrorDetails(err)["query"])
		})
	}
}

func TestParse_ErrorColumn(t *testing.T) {
	_, err := syntax.Parse("+a *b")
	require.Error(t, err)
	assert.Contains(t, errors.GetErrorDetails(err), "column")
}
