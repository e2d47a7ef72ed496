package pathset

import (
	"sort"
	"strings"

	"github.com/arthur-debert/fsimage/pkg/fspath"
)

// Kind classifies a terminal path
type Kind int

const (
	// File marks a single non-directory entry (regular file, symlink, device...)
	File Kind = iota + 1
	// Directory marks a directory and its whole subtree
	Directory
)

// String returns the lower-case name of the kind
func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return "unknown"
	}
}

type tag uint8

const (
	tagBranch tag = iota
	tagFile
	tagDirectory
)

func tagOf(k Kind) tag {
	if k == Directory {
		return tagDirectory
	}
	return tagFile
}

func (t tag) kind() Kind {
	if t == tagDirectory {
		return Directory
	}
	return File
}

func (t tag) String() string {
	switch t {
	case tagBranch:
		return "branch"
	case tagFile:
		return "file"
	default:
		return "directory"
	}
}

// node is either a branch with children or a terminal. Only branches carry a
// children map. Nodes reachable from a Set are never mutated.
type node struct {
	tag      tag
	children map[string]*node
}

var (
	fileTerminal      = &node{tag: tagFile}
	directoryTerminal = &node{tag: tagDirectory}
)

func newBranch() *node {
	return &node{tag: tagBranch, children: make(map[string]*node)}
}

func newTerminal(k Kind) *node {
	if k == Directory {
		return directoryTerminal
	}
	return fileTerminal
}

func (n *node) isBranch() bool {
	return n.tag == tagBranch
}

func (n *node) isEmpty() bool {
	return n.tag == tagBranch && len(n.children) == 0
}

// sortedKeys returns the child names in iteration order
func (n *node) sortedKeys() []string {
	keys := make([]string, 0, len(n.children))
	for k := range n.children {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// shallowCopy returns a branch with the same children
func (n *node) shallowCopy() *node {
	out := &node{tag: tagBranch, children: make(map[string]*node, len(n.children))}
	for k, v := range n.children {
		out.children[k] = v
	}
	return out
}

func nodesEqual(a, b *node) bool {
	if a.tag != b.tag {
		return false
	}
	if a.tag != tagBranch {
		return true
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for k, ac := range a.children {
		bc, ok := b.children[k]
		if !ok || !nodesEqual(ac, bc) {
			return false
		}
	}
	return true
}

// render formats components the same way fspath.Path.String does
func render(components []string) string {
	return fspath.Separator + strings.Join(components, fspath.Separator)
}

// toPath converts components collected from a tree walk into a Path.
// Components stored in a tree are always valid.
func toPath(components []string) fspath.Path {
	p, _ := fspath.New(components...)
	return p
}

// extend returns at+name without aliasing at's backing array
func extend(at []string, name string) []string {
	out := make([]string, len(at)+1)
	copy(out, at)
	out[len(at)] = name
	return out
}
