// Package modules implements the backup modules a query is made of.
//
// A module claims the paths some part of the system is already backed up
// by: a literal list of paths, a path list file, the files of packages in a
// package database, or the whole filesystem. Each kind registers a Factory
// from init(); New builds a module from its configuration.
//
// Modules only ever classify the paths they name. They never list
// directories, so a module naming /etc claims the whole /etc subtree.
package modules
