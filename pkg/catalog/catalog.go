// Package catalog holds the configured backup modules and named queries and
// turns query text into evaluable expressions.
package catalog

import (
	"slices"
	"strings"

	"github.com/arthur-debert/fsimage/pkg/config"
	"github.com/arthur-debert/fsimage/pkg/errors"
	"github.com/arthur-debert/fsimage/pkg/logging"
	"github.com/arthur-debert/fsimage/pkg/modules"
	"github.com/arthur-debert/fsimage/pkg/query"
	"github.com/arthur-debert/fsimage/pkg/query/syntax"
	"github.com/arthur-debert/fsimage/pkg/registry"
)

// NamedQuery is a query stored in the configuration under a name
type NamedQuery struct {
	Name string
	Text string
}

// Catalog resolves names used in queries
type Catalog struct {
	modules registry.Registry[modules.Module]
	queries map[string]string
	parsed  map[string]*syntax.Expression
}

// New builds every configured module
func New(cfg *config.Config, env modules.Env) (*Catalog, error) {
	logger := logging.GetLogger("catalog")

	c := &Catalog{
		modules: registry.New[modules.Module]("module"),
		queries: make(map[string]string, len(cfg.Queries)),
		parsed:  make(map[string]*syntax.Expression),
	}

	for name, modCfg := range cfg.Modules {
		m, err := modules.New(name, modCfg, env)
		if err != nil {
			return nil, err
		}
		if err := c.modules.Register(name, m); err != nil {
			return nil, err
		}
	}
	for name, text := range cfg.Queries {
		if c.modules.Has(name) {
			return nil, errors.Newf(errors.ErrConfigValid, "%s is both a module and a query", name).
				WithDetail("name", name)
		}
		c.queries[name] = text
	}

	logger.Debug().
		Int("modules", c.modules.Count()).
		Int("queries", len(c.queries)).
		Msg("catalog built")
	return c, nil
}

// Module returns the module configured under name
func (c *Catalog) Module(name string) (modules.Module, error) {
	if !c.modules.Has(name) {
		return nil, notFound(name)
	}
	return c.modules.Get(name)
}

// Modules returns every module sorted by name
func (c *Catalog) Modules() []modules.Module {
	out := make([]modules.Module, 0, c.modules.Count())
	for _, m := range c.modules.All() {
		out = append(out, m)
	}
	return out
}

// Queries returns every named query sorted by name
func (c *Catalog) Queries() []NamedQuery {
	out := make([]NamedQuery, 0, len(c.queries))
	for _, name := range sortedKeys(c.queries) {
		out = append(out, NamedQuery{Name: name, Text: c.queries[name]})
	}
	return out
}

// Compile parses text and resolves every name it references
func (c *Catalog) Compile(text string) (query.Expression, error) {
	ast, err := syntax.Parse(text)
	if err != nil {
		return nil, err
	}
	return c.Resolve(ast)
}

// Resolve turns a parsed expression into an evaluable one. Names resolve to
// modules first and to named queries second; named queries are resolved
// recursively and may not reference themselves.
func (c *Catalog) Resolve(ast *syntax.Expression) (query.Expression, error) {
	return c.resolve(ast, nil)
}

func (c *Catalog) resolve(ast *syntax.Expression, stack []string) (query.Expression, error) {
	expr := make(query.Expression, 0, len(ast.Terms))
	for _, t := range ast.Terms {
		sign := query.Add
		if !t.IsAdd() {
			sign = query.Subtract
		}

		if t.Sub != nil {
			sub, err := c.resolve(t.Sub, stack)
			if err != nil {
				return nil, err
			}
			expr = append(expr, query.Term{Sign: sign, Sub: sub})
			continue
		}

		if c.modules.Has(t.Ident) {
			m, err := c.modules.Get(t.Ident)
			if err != nil {
				return nil, err
			}
			expr = append(expr, query.Term{Sign: sign, Name: t.Ident, Producer: m})
			continue
		}

		sub, err := c.resolveQuery(t.Ident, stack)
		if err != nil {
			return nil, err
		}
		expr = append(expr, query.Term{Sign: sign, Name: t.Ident, Sub: sub})
	}
	return expr, nil
}

func (c *Catalog) resolveQuery(name string, stack []string) (query.Expression, error) {
	text, ok := c.queries[name]
	if !ok {
		return nil, notFound(name)
	}

	for i, seen := range stack {
		if seen == name {
			cycle := strings.Join(append(stack[i:], name), " -> ")
			return nil, errors.Newf(errors.ErrQueryCycle, "query %s references itself: %s", name, cycle).
				WithDetail("name", name).
				WithDetail("cycle", cycle)
		}
	}

	ast, ok := c.parsed[name]
	if !ok {
		var err error
		ast, err = syntax.Parse(text)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrQueryParse, "named query %s is invalid", name).
				WithDetail("name", name)
		}
		c.parsed[name] = ast
	}

	return c.resolve(ast, append(stack[:len(stack):len(stack)], name))
}

func notFound(name string) error {
	return errors.Newf(errors.ErrModuleNotFound, "no module or query named %s", name).
		WithDetail("name", name)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
