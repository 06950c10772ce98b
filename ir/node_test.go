package ir

import "testing"

func TestTypeString(t *testing.T) {
	for typ, want := range map[Type]string{
		NullType:   "null",
		BoolType:   "boolean",
		NumberType: "number",
		StringType: "string",
		ObjectType: "object",
		ArrayType:  "array",
	} {
		if got := typ.String(); got != want {
			t.Errorf("Type(%d).String() = %q, want %q", typ, got, want)
		}
	}
}

func TestTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("round trip %v -> %q -> %v", typ, d, back)
		}
	}
}

func TestPreview(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want string
	}{
		{"null", Null(), "null"},
		{"bool", FromBool(true), "true"},
		{"whole number", FromFloat(42), "42"},
		{"fractional number", FromFloat(3.25), "3.25"},
		{"string", FromString("hello"), `"hello"`},
		{"empty object", FromMap(nil), "{}"},
		{"one key", FromMap(map[string]*Node{"a": Null()}), "{ 1 key }"},
		{
			"many keys",
			FromMap(map[string]*Node{"a": Null(), "b": Null()}),
			"{ 2 keys }",
		},
		{"empty array", FromSlice(nil), "[]"},
		{"one item", FromSlice([]*Node{Null()}), "[ 1 item ]"},
		{"many items", FromSlice([]*Node{Null(), Null(), Null()}), "[ 3 items ]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Preview(80); got != tt.want {
				t.Errorf("Preview() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPreviewTruncation(t *testing.T) {
	long := FromString("this is a rather long string value")
	got := long.Preview(10)
	if len(got) != 10 || got[7:] != "..." {
		t.Errorf("Preview(10) = %q, want 7 chars plus ellipsis", got)
	}
}

func TestSize(t *testing.T) {
	small := FromString("a")
	big := FromString("aaaaaaaaaaaaaaaaaaaaaaaa")
	if small.Size() >= big.Size() {
		t.Errorf("Size: %d should be < %d", small.Size(), big.Size())
	}
	arr := FromSlice([]*Node{small, big})
	if arr.Size() <= small.Size()+big.Size() {
		t.Error("array size should include element sizes plus overhead")
	}
}
