package types

// ValueType is the closed enumeration of result types an expression can
// carry. It mirrors the type tag gmqcc's ast_expression.vtype field holds,
// plus TypePointer for the next-type chains used by field/function types.
type ValueType int

const (
	TypeVoid ValueType = iota
	TypeFloat
	TypeVector
	TypeString
	TypeEntity
	TypeField
	TypeFunction
	TypePointer
)

// String renders the type the way diagnostics and the IR printer expect.
func (t ValueType) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeFloat:
		return "float"
	case TypeVector:
		return "vector"
	case TypeString:
		return "string"
	case TypeEntity:
		return "entity"
	case TypeField:
		return "field"
	case TypeFunction:
		return "function"
	case TypePointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// IsScalar reports whether a value of this type occupies a single
// register-sized slot (as opposed to vector's three).
func (t ValueType) IsScalar() bool {
	return t != TypeVector
}
