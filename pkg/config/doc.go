// Package config loads the fsimage configuration.
//
// Values are layered, later sources winning: the embedded defaults, the
// config file, FSIMAGE_* environment variables, then command-line
// overrides. The merged tree is decoded into Config and validated.
package config
