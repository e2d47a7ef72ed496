// Package fspath models absolute paths inside a filesystem image as ordered
// lists of components.
//
// A Path never holds empty components or components containing the separator.
// The empty Path is the image root and renders as "/".
package fspath

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/fsimage/pkg/errors"
)

// Separator is the component separator of the textual form
const Separator = "/"

// Path is an absolute path split into components
type Path struct {
	components []string
}

// Root returns the path denoting the image root
func Root() Path {
	return Path{}
}

// Parse converts an absolute path text into a Path.
// Repeated separators collapse; a trailing separator is ignored.
func Parse(text string) (Path, error) {
	if !strings.HasPrefix(text, Separator) {
		return Path{}, errors.Newf(errors.ErrInvalidPath, "path %q must begin with %q", text, Separator).
			WithDetail(errors.DetailPath, text)
	}

	var components []string
	for _, segment := range strings.Split(text[len(Separator):], Separator) {
		if segment == "" {
			continue
		}
		components = append(components, segment)
	}
	return Path{components: components}, nil
}

// MustParse is like Parse but panics on invalid input
func MustParse(text string) Path {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// New builds a path from components, validating each one
func New(components ...string) (Path, error) {
	out := make([]string, 0, len(components))
	for _, c := range components {
		if err := validateComponent(c); err != nil {
			return Path{}, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return Path{}, nil
	}
	return Path{components: out}, nil
}

func validateComponent(c string) error {
	if c == "" {
		return errors.New(errors.ErrInvalidPath, "path component cannot be empty")
	}
	if strings.Contains(c, Separator) {
		return errors.Newf(errors.ErrInvalidPath, "path component %q contains %q", c, Separator).
			WithDetail(errors.DetailPath, c)
	}
	return nil
}

// String renders the canonical textual form
func (p Path) String() string {
	if len(p.components) == 0 {
		return Separator
	}
	return Separator + strings.Join(p.components, Separator)
}

// Components returns a copy of the path components
func (p Path) Components() []string {
	out := make([]string, len(p.components))
	copy(out, p.components)
	return out
}

// Len returns the number of components
func (p Path) Len() int {
	return len(p.components)
}

// IsRoot reports whether p denotes the image root
func (p Path) IsRoot() bool {
	return len(p.components) == 0
}

// Component returns the i-th component
func (p Path) Component(i int) string {
	return p.components[i]
}

// Base returns the last component, or "" for the root
func (p Path) Base() string {
	if len(p.components) == 0 {
		return ""
	}
	return p.components[len(p.components)-1]
}

// Equal reports whether both paths have the same components
func (p Path) Equal(other Path) bool {
	if len(p.components) != len(other.components) {
		return false
	}
	for i := range p.components {
		if p.components[i] != other.components[i] {
			return false
		}
	}
	return true
}

// OSPath maps p onto the real filesystem below root
func (p Path) OSPath(root string) string {
	if root == "" {
		root = Separator
	}
	return filepath.Join(append([]string{root}, p.components...)...)
}
