package ir

import (
	"fmt"
	"math"
	"strconv"
	"unsafe"
)

// Node is one value in a parsed document tree. The Type field selects
// which payload field is meaningful; the others are zero.
type Node struct {
	Type Type

	Bool    bool
	Float64 float64
	String  string

	// Fields holds object members. Iteration order of the map has no
	// semantic meaning.
	Fields map[string]*Node

	// Values holds array elements in order.
	Values []*Node
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromFloat(v float64) *Node {
	return &Node{Type: NumberType, Float64: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

func FromMap(m map[string]*Node) *Node {
	return &Node{Type: ObjectType, Fields: m}
}

// Clone returns a deep copy of y sharing no memory with it.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		Bool:    y.Bool,
		Float64: y.Float64,
		String:  y.String,
	}
	if y.Fields != nil {
		res.Fields = make(map[string]*Node, len(y.Fields))
		for k, v := range y.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Preview returns a short single-line rendering of the node value,
// truncated to maxLen.
func (y *Node) Preview(maxLen int) string {
	var preview string
	switch y.Type {
	case NullType:
		preview = "null"
	case BoolType:
		preview = strconv.FormatBool(y.Bool)
	case NumberType:
		preview = formatNumber(y.Float64)
	case StringType:
		preview = "\"" + y.String + "\""
	case ObjectType:
		switch n := len(y.Fields); n {
		case 0:
			preview = "{}"
		case 1:
			preview = "{ 1 key }"
		default:
			preview = fmt.Sprintf("{ %d keys }", n)
		}
	case ArrayType:
		switch n := len(y.Values); n {
		case 0:
			preview = "[]"
		case 1:
			preview = "[ 1 item ]"
		default:
			preview = fmt.Sprintf("[ %d items ]", n)
		}
	}
	if len(preview) > maxLen {
		cut := maxLen - 3
		if cut < 0 {
			cut = 0
		}
		return preview[:cut] + "..."
	}
	return preview
}

// formatNumber renders finite whole numbers without a fractional part.
func formatNumber(f float64) string {
	if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Trunc(f) == f && math.Abs(f) < 1<<53 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Size returns an approximate in-memory size of the subtree in bytes.
func (y *Node) Size() int {
	base := int(unsafe.Sizeof(*y))
	switch y.Type {
	case StringType:
		return base + len(y.String)
	case ObjectType:
		n := base
		for k, v := range y.Fields {
			n += len(k) + v.Size()
		}
		return n
	case ArrayType:
		n := base
		for _, v := range y.Values {
			n += v.Size()
		}
		return n
	default:
		return base
	}
}
