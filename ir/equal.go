package ir

import "math"

// Epsilon is the absolute tolerance used when comparing numbers.
//
// The tolerance is absolute, not relative: two large-magnitude numbers
// whose difference exceeds Epsilon compare unequal even when the
// difference is proportionally tiny. This is a known calibration.
const Epsilon = 1e-10

// SemanticEqual reports whether a and b represent the same value,
// ignoring object key order and tolerating float rounding within
// [Epsilon]. Nodes of different types are never equal.
func SemanticEqual(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case NumberType:
		return math.Abs(a.Float64-b.Float64) < Epsilon
	case StringType:
		return a.String == b.String
	case ObjectType:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for k, av := range a.Fields {
			bv, ok := b.Fields[k]
			if !ok || !SemanticEqual(av, bv) {
				return false
			}
		}
		return true
	case ArrayType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		for i, av := range a.Values {
			if !SemanticEqual(av, b.Values[i]) {
				return false
			}
		}
		return true
	}
	return false
}
