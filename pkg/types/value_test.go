package types

import "testing"

func TestValueTypeString(t *testing.T) {
	cases := map[ValueType]string{
		TypeVoid:     "void",
		TypeFloat:    "float",
		TypeVector:   "vector",
		TypeString:   "string",
		TypeEntity:   "entity",
		TypeField:    "field",
		TypeFunction: "function",
		TypePointer:  "pointer",
	}
	for vt, want := range cases {
		if got := vt.String(); got != want {
			t.Errorf("ValueType(%d).String() = %q, want %q", vt, got, want)
		}
	}
}

func TestIsScalar(t *testing.T) {
	scalar := []ValueType{TypeVoid, TypeFloat, TypeString, TypeEntity, TypeField, TypeFunction, TypePointer}
	for _, vt := range scalar {
		if !vt.IsScalar() {
			t.Errorf("%s should be scalar", vt)
		}
	}
	if TypeVector.IsScalar() {
		t.Error("vector should not be scalar")
	}
}
