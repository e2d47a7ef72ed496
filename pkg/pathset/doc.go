// Package pathset implements sets of filesystem paths stored as compressed
// trees.
//
// A tree node is either a branch holding named children or a terminal marking
// that its path belongs to the set. Terminals are classified as files or
// directories. A directory terminal stands for itself and everything beneath
// it, so a set can contain a whole subtree without enumerating it. This is
// called absorption: nothing is ever stored below a directory terminal.
//
// Sets are immutable values. Build creates one from a list of paths, asking a
// Classifier whether each terminal path is a file or a directory. Union and
// Difference return new sets and leave their operands untouched. All iterates
// the stored terminals in a deterministic depth-first order.
//
// Structural contradictions, such as treating a file as a directory, are
// reported as PATH_CONFLICT errors. Removing a subtree from a directory
// terminal is reported as UNREPRESENTABLE_DIFFERENCE because the set would
// have to list the directory's real children to express the result.
package pathset
