package ir

import "testing"

func TestSemanticEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null == null", Null(), Null(), true},
		{"bool equal", FromBool(true), FromBool(true), true},
		{"bool unequal", FromBool(true), FromBool(false), false},
		{"string equal", FromString("hi"), FromString("hi"), true},
		{"string unequal", FromString("hi"), FromString("ho"), false},
		{"number exact", FromFloat(42), FromFloat(42), true},
		{"number within epsilon", FromFloat(1.0), FromFloat(1.0 + 1e-15), true},
		{"number outside epsilon", FromFloat(1.0), FromFloat(1.1), false},
		{"cross type", FromFloat(42), FromString("42"), false},
		{"null vs bool", Null(), FromBool(false), false},
		{
			"object key order irrelevant",
			FromMap(map[string]*Node{"a": FromFloat(1), "b": FromFloat(2)}),
			FromMap(map[string]*Node{"b": FromFloat(2), "a": FromFloat(1)}),
			true,
		},
		{
			"object cardinality",
			FromMap(map[string]*Node{"a": FromFloat(1)}),
			FromMap(map[string]*Node{"a": FromFloat(1), "b": FromFloat(2)}),
			false,
		},
		{
			"object value differs",
			FromMap(map[string]*Node{"a": FromFloat(1)}),
			FromMap(map[string]*Node{"a": FromFloat(2)}),
			false,
		},
		{
			"array order matters",
			FromSlice([]*Node{FromFloat(1), FromFloat(2)}),
			FromSlice([]*Node{FromFloat(2), FromFloat(1)}),
			false,
		},
		{
			"array length matters",
			FromSlice([]*Node{FromFloat(1)}),
			FromSlice([]*Node{FromFloat(1), FromFloat(2)}),
			false,
		},
		{
			"nested equal",
			FromMap(map[string]*Node{"user": FromMap(map[string]*Node{"age": FromFloat(30)})}),
			FromMap(map[string]*Node{"user": FromMap(map[string]*Node{"age": FromFloat(30)})}),
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SemanticEqual(tt.a, tt.b); got != tt.want {
				t.Errorf("SemanticEqual() = %v, want %v", got, tt.want)
			}
			// equality is symmetric
			if got := SemanticEqual(tt.b, tt.a); got != tt.want {
				t.Errorf("SemanticEqual(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone(t *testing.T) {
	orig := FromMap(map[string]*Node{
		"users": FromSlice([]*Node{
			FromMap(map[string]*Node{"name": FromString("Alice")}),
		}),
		"count": FromFloat(1),
	})
	c := orig.Clone()
	if !SemanticEqual(orig, c) {
		t.Fatal("clone is not semantically equal to original")
	}
	c.Fields["users"].Values[0].Fields["name"].String = "Bob"
	if orig.Fields["users"].Values[0].Fields["name"].String != "Alice" {
		t.Error("mutating the clone changed the original")
	}
}
