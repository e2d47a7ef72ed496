// Package query folds signed references to path producers into one path set.
//
// An Expression is an ordered list of terms. Each term adds or subtracts the
// set produced by a backup module, or the result of a nested expression, to
// a running accumulator that starts empty:
//
//	+everything -etc -home
//
// Evaluation is synchronous and fails fast; no partial result is returned.
package query
