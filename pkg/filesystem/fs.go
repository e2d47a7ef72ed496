package filesystem

import (
	"io/fs"
	"path/filepath"
)

// FS is the read-only filesystem surface fsimage needs.
// Lstat must not follow a final symlink.
type FS interface {
	Lstat(name string) (fs.FileInfo, error)
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// rootedFS resolves every name below a fixed directory
type rootedFS struct {
	base FS
	root string
}

// Rooted returns an FS that treats absolute names as relative to root.
// A root of "" or "/" returns base unchanged.
func Rooted(base FS, root string) FS {
	if root == "" || filepath.Clean(root) == string(filepath.Separator) {
		return base
	}
	return &rootedFS{base: base, root: filepath.Clean(root)}
}

func (r *rootedFS) resolve(name string) string {
	return filepath.Join(r.root, name)
}

func (r *rootedFS) Lstat(name string) (fs.FileInfo, error) {
	return r.base.Lstat(r.resolve(name))
}

func (r *rootedFS) Stat(name string) (fs.FileInfo, error) {
	return r.base.Stat(r.resolve(name))
}

func (r *rootedFS) ReadFile(name string) ([]byte, error) {
	return r.base.ReadFile(r.resolve(name))
}
