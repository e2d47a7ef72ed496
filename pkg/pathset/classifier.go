package pathset

import (
	"io/fs"

	"github.com/arthur-debert/fsimage/pkg/filesystem"
	"github.com/arthur-debert/fsimage/pkg/fspath"
)

// Classifier decides whether a terminal path is a file or a directory.
// Build calls it once per terminal path that is not already absorbed.
type Classifier interface {
	Classify(p fspath.Path) (Kind, error)
}

// ClassifierFunc adapts a function to the Classifier interface
type ClassifierFunc func(p fspath.Path) (Kind, error)

// Classify calls f(p)
func (f ClassifierFunc) Classify(p fspath.Path) (Kind, error) {
	return f(p)
}

// FSClassifier classifies paths with lstat below an image root, so a
// symlink to a directory counts as a file.
type FSClassifier struct {
	fs   filesystem.FS
	root string
}

// NewFSClassifier creates a classifier over fsys with paths resolved below root
func NewFSClassifier(fsys filesystem.FS, root string) *FSClassifier {
	if root == "" {
		root = fspath.Separator
	}
	return &FSClassifier{fs: fsys, root: root}
}

// Classify implements Classifier
func (c *FSClassifier) Classify(p fspath.Path) (Kind, error) {
	info, err := c.fs.Lstat(p.OSPath(c.root))
	if err != nil {
		return 0, err
	}
	if info.IsDir() {
		return Directory, nil
	}
	return File, nil
}

// StaticClassifier classifies from a fixed table keyed by rendered path.
// Unknown paths fail with fs.ErrNotExist.
type StaticClassifier map[string]Kind

// Classify implements Classifier
func (s StaticClassifier) Classify(p fspath.Path) (Kind, error) {
	k, ok := s[p.String()]
	if !ok {
		return 0, &fs.PathError{Op: "lstat", Path: p.String(), Err: fs.ErrNotExist}
	}
	return k, nil
}
