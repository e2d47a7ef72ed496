package pathset

import (
	"github.com/arthur-debert/fsimage/pkg/errors"
)

// Policy controls how Difference treats paths that are not in the minuend
type Policy int

const (
	// Strict fails with NOT_PRESENT_IN_WHOLE when a removed path is not covered
	Strict Policy = iota
	// Relaxed ignores removed paths that are not covered
	Relaxed
)

// String returns the lower-case name of the policy
func (p Policy) String() string {
	if p == Relaxed {
		return "relaxed"
	}
	return "strict"
}

// Difference returns a new set holding the paths of s that are not in remove.
//
// Terminals of the same kind cancel out and a directory in remove drops any
// branch of s below it. Removing paths from inside a directory terminal of s
// fails with UNREPRESENTABLE_DIFFERENCE, because the result could only be
// expressed by listing the directory's real children. Kind mismatches fail
// with PATH_CONFLICT.
func (s *Set) Difference(remove *Set, policy Policy) (*Set, error) {
	if s.IsEmpty() && !remove.IsEmpty() {
		if policy == Strict {
			first, _ := firstTerminal(remove.rootNode(), nil)
			return nil, errors.Newf(errors.ErrNotPresentInWhole, "%s is not present in the empty set", render(first)).
				WithDetail(errors.DetailPath, render(first))
		}
		return Empty(), nil
	}

	rest, err := subtract(s.rootNode(), remove.rootNode(), nil, policy)
	if err != nil {
		return nil, err
	}
	return wrap(rest), nil
}

// subtract returns what is left of whole, or nil when nothing is left
func subtract(whole, remove *node, at []string, policy Policy) (*node, error) {
	if remove.isEmpty() {
		return whole, nil
	}

	switch {
	case !whole.isBranch() && !remove.isBranch():
		if whole.tag != remove.tag {
			return nil, errors.Newf(errors.ErrPathConflict, "cannot subtract %s %s from %s %s",
				remove.tag, render(at), whole.tag, render(at)).
				WithDetail(errors.DetailPath, render(at))
		}
		return nil, nil

	case whole.isBranch() && remove.tag == tagDirectory:
		return nil, nil

	case whole.isBranch() && remove.tag == tagFile:
		return nil, errors.Newf(errors.ErrPathConflict, "cannot subtract file %s: it has children", render(at)).
			WithDetail(errors.DetailPath, render(at))

	case whole.tag == tagDirectory:
		return nil, errors.Newf(errors.ErrUnrepresentableDifference,
			"cannot remove paths below directory %s without listing its contents", render(at)).
			WithDetail(errors.DetailPath, render(at))

	case whole.tag == tagFile:
		return nil, errors.Newf(errors.ErrPathConflict, "cannot remove paths below file %s", render(at)).
			WithDetail(errors.DetailPath, render(at))
	}

	return subtractBranches(whole, remove, at, policy)
}

func subtractBranches(whole, remove *node, at []string, policy Policy) (*node, error) {
	var out *node
	for _, name := range remove.sortedKeys() {
		wc, ok := whole.children[name]
		if !ok {
			if policy == Strict {
				missing := render(extend(at, name))
				return nil, errors.Newf(errors.ErrNotPresentInWhole, "%s is not present in the set it is removed from", missing).
					WithDetail(errors.DetailPath, missing)
			}
			continue
		}

		rest, err := subtract(wc, remove.children[name], extend(at, name), policy)
		if err != nil {
			return nil, err
		}
		if rest == wc {
			continue
		}
		if out == nil {
			out = whole.shallowCopy()
		}
		if rest == nil {
			delete(out.children, name)
		} else {
			out.children[name] = rest
		}
	}

	if out == nil {
		return whole, nil
	}
	if len(out.children) == 0 {
		return nil, nil
	}
	return out, nil
}
