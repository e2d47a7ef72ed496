package pathset

import (
	"iter"

	"github.com/arthur-debert/fsimage/pkg/fspath"
)

// Entry is a stored terminal path with its kind
type Entry struct {
	Path fspath.Path
	Kind Kind
}

// Walk visits every terminal depth-first with children in lexical order.
// It stops early when fn returns false. Each call starts a fresh traversal.
func (s *Set) Walk(fn func(Entry) bool) {
	walk(s.rootNode(), nil, fn)
}

func walk(n *node, at []string, fn func(Entry) bool) bool {
	if !n.isBranch() {
		return fn(Entry{Path: toPath(at), Kind: n.tag.kind()})
	}
	for _, name := range n.sortedKeys() {
		if !walk(n.children[name], extend(at, name), fn) {
			return false
		}
	}
	return true
}

// All returns an iterator over the stored terminal paths
func (s *Set) All() iter.Seq[fspath.Path] {
	return func(yield func(fspath.Path) bool) {
		s.Walk(func(e Entry) bool {
			return yield(e.Path)
		})
	}
}

// Paths collects the stored terminal paths in iteration order
func (s *Set) Paths() []fspath.Path {
	var out []fspath.Path
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Strings collects the rendered terminal paths in iteration order
func (s *Set) Strings() []string {
	out := []string{}
	for p := range s.All() {
		out = append(out, p.String())
	}
	return out
}

// Entries collects the stored terminals with their kinds in iteration order
func (s *Set) Entries() []Entry {
	var out []Entry
	s.Walk(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// firstTerminal returns the components of the first terminal below n
func firstTerminal(n *node, at []string) ([]string, bool) {
	var found []string
	ok := false
	walk(n, at, func(e Entry) bool {
		found = e.Path.Components()
		ok = true
		return false
	})
	return found, ok
}
