// Package diff computes structural differences between two ir.Node
// trees.
//
// Compute walks both trees in lockstep and reports each difference as
// a Change located by a path of segments. Object members are compared
// by key, independent of order; arrays are reconciled either
// positionally or by longest-common-subsequence alignment, selected
// via Config.ArrayStrategy.
//
// Compute and the helpers in this package are pure: they never fail,
// never perform I/O, and the returned Diff holds deep copies of the
// compared values.
package diff
