package pathset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want string
	}{
		{"disjoint", []string{"/etc"}, []string{"/var/log/app.log"}, ""},
		{"sibling files", []string{"/a/b"}, []string{"/a/c"}, ""},
		{"same directory", []string{"/etc"}, []string{"/etc"}, "/etc"},
		{"same file", []string{"/x", "/a/b"}, []string{"/a/b"}, "/a/b"},
		{"directory over file", []string{"/a"}, []string{"/a/c", "/a/b"}, "/a/b"},
		{"file under directory", []string{"/var/log/app.log"}, []string{"/var"}, "/var/log/app.log"},
		{"root over everything", []string{"/"}, []string{"/x"}, "/x"},
		{"empty side", nil, []string{"/x"}, ""},
		{"first in iteration order", []string{"/x", "/a/b"}, []string{"/x", "/a/b"}, "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := mustBuild(t, tt.a...), mustBuild(t, tt.b...)

			for _, pair := range [][2]*Set{{a, b}, {b, a}} {
				got, ok := Overlap(pair[0], pair[1])
				if tt.want == "" {
					assert.False(t, ok, "unexpected overlap at %s", got)
					continue
				}
				assert.True(t, ok)
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestOverlap_FileFacingBranchIsNotAnOverlap(t *testing.T) {
	files := mustBuild(t, "/p")
	nested := buildWith(t, StaticClassifier{"/p/inner": File}, "/p/inner")

	_, ok := Overlap(files, nested)
	assert.False(t, ok)
}
