// Package registry provides a generic, thread-safe registry keyed by name.
// Backup module kinds register their factories into one from init()
// functions, and the catalog keeps configured module instances in another.
package registry
