package pathset

import (
	"github.com/arthur-debert/fsimage/pkg/fspath"
)

// Overlap reports the first path claimed by both sets.
//
// Two terminals at the same path overlap, and a directory terminal overlaps
// every terminal stored below it on the other side; the deeper path is the
// one reported. A file facing a branch is not an overlap but a structural
// conflict, which Union reports.
func Overlap(a, b *Set) (fspath.Path, bool) {
	found, ok := overlap(a.rootNode(), b.rootNode(), nil)
	if !ok {
		return fspath.Path{}, false
	}
	return toPath(found), true
}

func overlap(a, b *node, at []string) ([]string, bool) {
	if a.isEmpty() || b.isEmpty() {
		return nil, false
	}

	switch {
	case !a.isBranch() && !b.isBranch():
		return at, true
	case a.tag == tagDirectory:
		return firstTerminal(b, at)
	case b.tag == tagDirectory:
		return firstTerminal(a, at)
	case !a.isBranch() || !b.isBranch():
		return nil, false
	}

	for _, name := range a.sortedKeys() {
		bc, ok := b.children[name]
		if !ok {
			continue
		}
		if found, ok := overlap(a.children[name], bc, extend(at, name)); ok {
			return found, true
		}
	}
	return nil, false
}
