// Package filesystem provides the filesystem metadata access used by fsimage.
//
// This package contains implementations of the FS interface, including the
// standard OS filesystem and an afero-backed filesystem used by tests.
package filesystem
