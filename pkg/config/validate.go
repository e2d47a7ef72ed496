package config

import (
	"path/filepath"
	"regexp"
	"slices"
	"sort"

	"github.com/arthur-debert/fsimage/pkg/errors"
)

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Validate checks the configuration. kinds lists the known module kinds;
// when empty, module kinds are not checked.
func (c *Config) Validate(kinds []string) error {
	if !filepath.IsAbs(c.Root) {
		return invalid("root", "root must be an absolute path, got %q", c.Root)
	}
	c.Root = filepath.Clean(c.Root)

	if !slices.Contains(OutputFormats, c.Output.Format) {
		return invalid("output.format", "unknown output format %q, expected one of %v", c.Output.Format, OutputFormats)
	}

	for _, name := range sortedKeys(c.Modules) {
		mod := c.Modules[name]
		if !namePattern.MatchString(name) {
			return invalid("modules."+name, "module name %q is not a valid identifier", name)
		}
		if mod.Kind == "" {
			return invalid("modules."+name+".kind", "module %s has no kind", name)
		}
		if len(kinds) > 0 && !slices.Contains(kinds, mod.Kind) {
			return invalid("modules."+name+".kind", "module %s has unknown kind %q, expected one of %v", name, mod.Kind, kinds)
		}
	}

	for _, name := range sortedKeys(c.Queries) {
		if !namePattern.MatchString(name) {
			return invalid("queries."+name, "query name %q is not a valid identifier", name)
		}
		if _, clash := c.Modules[name]; clash {
			return invalid("queries."+name, "%s is both a module and a query", name)
		}
		if c.Queries[name] == "" {
			return invalid("queries."+name, "query %s is empty", name)
		}
	}
	return nil
}

func invalid(key, format string, args ...interface{}) error {
	return errors.Newf(errors.ErrConfigValid, format, args...).
		WithDetail("key", key)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
