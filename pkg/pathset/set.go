package pathset

import (
	"strings"

	"github.com/arthur-debert/fsimage/pkg/fspath"
)

// Set is an immutable set of paths backed by a compressed tree.
// The zero value and a nil *Set are both the empty set.
type Set struct {
	root *node
}

// Empty returns a set holding no paths
func Empty() *Set {
	return &Set{root: newBranch()}
}

// Everything returns the set holding the root directory and all paths below it
func Everything() *Set {
	return &Set{root: directoryTerminal}
}

func (s *Set) rootNode() *node {
	if s == nil || s.root == nil {
		return newBranch()
	}
	return s.root
}

func wrap(root *node) *Set {
	if root == nil {
		return Empty()
	}
	return &Set{root: root}
}

// IsEmpty reports whether the set holds no paths
func (s *Set) IsEmpty() bool {
	return s.rootNode().isEmpty()
}

// Len returns the number of stored terminals, not the number of real paths
// a directory terminal stands for
func (s *Set) Len() int {
	return countTerminals(s.rootNode())
}

func countTerminals(n *node) int {
	if !n.isBranch() {
		return 1
	}
	total := 0
	for _, child := range n.children {
		total += countTerminals(child)
	}
	return total
}

// Contains reports whether p is in the set, either as a stored terminal or
// below a directory terminal
func (s *Set) Contains(p fspath.Path) bool {
	cur := s.rootNode()
	for i := 0; i < p.Len(); i++ {
		switch cur.tag {
		case tagDirectory:
			return true
		case tagFile:
			return false
		}
		child, ok := cur.children[p.Component(i)]
		if !ok {
			return false
		}
		cur = child
	}
	return !cur.isBranch()
}

// Equal reports whether both sets store the same tree
func (s *Set) Equal(other *Set) bool {
	return nodesEqual(s.rootNode(), other.rootNode())
}

// String renders the stored paths separated by spaces, for diagnostics
func (s *Set) String() string {
	return "{" + strings.Join(s.Strings(), " ") + "}"
}
