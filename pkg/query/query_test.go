package query_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/pathset"
	"github.com/arthur-debert/fsimage/pkg/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixture = pathset.StaticClassifier{
	"/":                 pathset.Directory,
	"/etc":              pathset.Directory,
	"/etc/hosts":        pathset.File,
	"/home":             pathset.Directory,
	"/var/log/app.log":  pathset.File,
	"/var/log/sys.log":  pathset.File,
	"/usr/bin/tool":     pathset.File,
	"/usr/share/doc/me": pathset.Directory,
}

// MockProducer implements query.Producer for testing
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Produce() (*pathset.Set, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pathset.Set), args.Error(1)
}

func producing(t *testing.T, paths ...string) *MockProducer {
	t.Helper()
	set, err := pathset.BuildStrings(fixture, paths)
	require.NoError(t, err)
	m := &MockProducer{}
	m.On("Produce").Return(set, nil)
	return m
}

func add(name string, p query.Producer) query.Term {
	return query.Term{Sign: query.Add, Name: name, Producer: p}
}

func sub(name string, p query.Producer) query.Term {
	return query.Term{Sign: query.Subtract, Name: name, Producer: p}
}

func TestEvaluate_Scenario(t *testing.T) {
	moduleA := producing(t, "/etc")
	moduleB := producing(t, "/var/log/app.log")

	got, err := query.Evaluate(query.Options{}, query.Expression{
		add("moduleA", moduleA),
		add("moduleB", moduleB),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc", "/var/log/app.log"}, got.Strings())

	moduleA.AssertNumberOfCalls(t, "Produce", 1)
	moduleB.AssertNumberOfCalls(t, "Produce", 1)
}

func TestEvaluate_DuplicateAddition(t *testing.T) {
	moduleA := producing(t, "/etc")
	expr := query.Expression{add("moduleA", moduleA), add("moduleA", moduleA)}

	_, err := query.Evaluate(query.Options{}, expr)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateAddition))
	assert.Equal(t, "/etc", errors.GetErrorPath(err))

	got, err := query.Evaluate(query.Options{AllowDuplicateAddition: true}, expr)
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc"}, got.Strings())

	// Each term invokes its producer once per evaluation.
	moduleA.AssertNumberOfCalls(t, "Produce", 4)
}

func TestEvaluate_DuplicateAdditionBelowDirectory(t *testing.T) {
	_, err := query.Evaluate(query.Options{}, query.Expression{
		add("etc", producing(t, "/etc")),
		add("hosts", producing(t, "/etc/hosts")),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateAddition))
	assert.Equal(t, "/etc/hosts", errors.GetErrorPath(err))
	assert.Equal(t, "hosts", errors.GetErrorDetails(err)["term"])
}

func TestEvaluate_Subtraction(t *testing.T) {
	tests := []struct {
		name     string
		opts     query.Options
		expr     func(t *testing.T) query.Expression
		want     []string
		wantCode errors.ErrorCode
		wantPath string
	}{
		{
			name: "drift query",
			expr: func(t *testing.T) query.Expression {
				return query.Expression{
					add("logs", producing(t, "/var/log/app.log", "/var/log/sys.log", "/etc")),
					sub("etc", producing(t, "/etc")),
					sub("app", producing(t, "/var/log/app.log")),
				}
			},
			want: []string{"/var/log/sys.log"},
		},
		{
			name: "strict subtraction of absent path",
			expr: func(t *testing.T) query.Expression {
				return query.Expression{
					add("etc", producing(t, "/etc")),
					sub("home", producing(t, "/home")),
				}
			},
			wantCode: errors.ErrNotPresentInWhole,
			wantPath: "/home",
		},
		{
			name: "relaxed subtraction of absent path",
			opts: query.Options{AllowNonpresentSubtraction: true},
			expr: func(t *testing.T) query.Expression {
				return query.Expression{
					add("etc", producing(t, "/etc")),
					sub("home", producing(t, "/home")),
				}
			},
			want: []string{"/etc"},
		},
		{
			name: "subtracting from an empty accumulator",
			opts: query.Options{AllowNonpresentSubtraction: true},
			expr: func(t *testing.T) query.Expression {
				return query.Expression{sub("etc", producing(t, "/etc"))}
			},
			want: []string{},
		},
		{
			name: "carving into a directory",
			expr: func(t *testing.T) query.Expression {
				return query.Expression{
					add("everything", producing(t, "/")),
					sub("etc", producing(t, "/etc")),
				}
			},
			wantCode: errors.ErrUnrepresentableDifference,
			wantPath: "/",
		},
		{
			name: "empty expression",
			expr: func(t *testing.T) query.Expression {
				return nil
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := query.Evaluate(tt.opts, tt.expr(t))
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
				assert.Equal(t, tt.wantPath, errors.GetErrorPath(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Strings())
		})
	}
}

func TestEvaluate_NestedExpression(t *testing.T) {
	logs := producing(t, "/var/log/app.log", "/var/log/sys.log")
	app := producing(t, "/var/log/app.log")
	etc := producing(t, "/etc")

	// +etc +(+logs -app)
	got, err := query.Evaluate(query.Options{}, query.Expression{
		add("etc", etc),
		{Sign: query.Add, Name: "syslogs", Sub: query.Expression{add("logs", logs), sub("app", app)}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc", "/var/log/sys.log"}, got.Strings())

	// -(+etc) removes the nested result
	got, err = query.Evaluate(query.Options{}, query.Expression{
		add("etc", etc),
		add("logs", logs),
		{Sign: query.Subtract, Sub: query.Expression{add("etc", etc)}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/var/log/app.log", "/var/log/sys.log"}, got.Strings())
}

func TestEvaluate_NestedExpressionSharesOptions(t *testing.T) {
	etc := producing(t, "/etc")
	nested := query.Expression{add("etc", etc), add("etc", etc)}

	_, err := query.Evaluate(query.Options{}, query.Expression{{Sign: query.Add, Name: "twice", Sub: nested}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrDuplicateAddition))

	got, err := query.Evaluate(query.Options{AllowDuplicateAddition: true},
		query.Expression{{Sign: query.Add, Name: "twice", Sub: nested}})
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc"}, got.Strings())
}

func TestEvaluate_ProducerFailure(t *testing.T) {
	cause := stderrors.New("database unreadable")
	broken := &MockProducer{}
	broken.On("Produce").Return(nil, cause)
	never := &MockProducer{}

	_, err := query.Evaluate(query.Options{}, query.Expression{
		add("packages", broken),
		add("never", never),
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModuleProduce))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "packages")

	never.AssertNotCalled(t, "Produce")
}

func TestEvaluate_NilSetIsEmpty(t *testing.T) {
	got, err := query.Evaluate(query.Options{}, query.Expression{
		add("nothing", query.ProducerFunc(func() (*pathset.Set, error) { return nil, nil })),
		add("etc", producing(t, "/etc")),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc"}, got.Strings())
}

func TestEvaluate_TermWithoutOperand(t *testing.T) {
	_, err := query.Evaluate(query.Options{}, query.Expression{{Sign: query.Add, Name: "hollow"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestExpressionString(t *testing.T) {
	etc := producing(t, "/etc")
	expr := query.Expression{
		add("everything", etc),
		sub("etc", etc),
		{Sign: query.Subtract, Sub: query.Expression{add("home", etc), sub("cache", etc)}},
	}
	assert.Equal(t, "+everything -etc -(+home -cache)", expr.String())

	named := query.Expression{
		{Sign: query.Add, Name: "system", Sub: query.Expression{add("etc", etc), add("logs", etc)}},
		add("home", etc),
	}
	assert.Equal(t, "+system +home", named.String())
}
