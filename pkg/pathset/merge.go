package pathset

import (
	"github.com/arthur-debert/fsimage/pkg/errors"
)

// Union returns a new set holding every path of s and other.
// A directory terminal absorbs whatever the other side stores at or below it.
// A file on one side facing paths below it on the other is a PATH_CONFLICT.
func (s *Set) Union(other *Set) (*Set, error) {
	merged, err := merge(s.rootNode(), other.rootNode(), nil)
	if err != nil {
		return nil, err
	}
	return wrap(merged), nil
}

// Union folds every set into one, left to right
func Union(sets ...*Set) (*Set, error) {
	acc := Empty()
	for _, s := range sets {
		next, err := acc.Union(s)
		if err != nil {
			return nil, err
		}
		acc = next
	}
	return acc, nil
}

func merge(a, b *node, at []string) (*node, error) {
	switch {
	case a.tag == tagDirectory:
		return a, nil
	case b.tag == tagDirectory:
		return b, nil
	case a.tag == tagFile && b.tag == tagFile:
		return a, nil
	case a.isBranch() && b.isBranch():
		return mergeBranches(a, b, at)
	}

	// One file and one branch. An empty branch only occurs at the root,
	// where it stands for the empty set.
	if a.isEmpty() {
		return b, nil
	}
	if b.isEmpty() {
		return a, nil
	}
	return nil, errors.Newf(errors.ErrPathConflict, "%s is a file in one set and has children in the other", render(at)).
		WithDetail(errors.DetailPath, render(at))
}

func mergeBranches(a, b *node, at []string) (*node, error) {
	if len(b.children) == 0 {
		return a, nil
	}
	if len(a.children) == 0 {
		return b, nil
	}

	out := a.shallowCopy()
	for _, name := range b.sortedKeys() {
		bc := b.children[name]
		ac, ok := out.children[name]
		if !ok {
			out.children[name] = bc
			continue
		}
		merged, err := merge(ac, bc, extend(at, name))
		if err != nil {
			return nil, err
		}
		out.children[name] = merged
	}
	return out, nil
}
