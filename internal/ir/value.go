package ir

import (
	"fmt"

	"github.com/wbumiller/gmqcc/pkg/types"
)

// Value is an SSA-style IR value: a global, a local, a parameter slot,
// a constant, or the result of an instruction. A computed value is
// produced by exactly the one instruction that defines it. A constant
// payload is attached after creation by the Builder's Set*Constant
// methods, and the lowering pass may overwrite a call result's Type.
type Value struct {
	id       int
	Name     string
	Type     types.ValueType
	isParam  bool
	isConst  bool
	constVal any // float64, [3]float64, or string depending on Type
}

func (v *Value) ID() int   { return v.id }
func (v *Value) IsConst() bool { return v.isConst }
func (v *Value) IsParam() bool { return v.isParam }
func (v *Value) ConstValue() any { return v.constVal }

func (v *Value) String() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%%%d", v.id)
}

// Opcode is the closed set of binary/unary operations a Binary/Unary AST
// node can carry, shared between the AST (which only ever stores the
// tag) and the IR (which derives result types and textual mnemonics
// from it). Grounded in gmqcc's direct reuse of its instruction set as
// the AST's opcode space — ast_binary.op and INSTR_* are literally the
// same values in the original.
type Opcode int

const (
	OpAddF Opcode = iota
	OpSubF
	OpMulF
	OpDivF
	OpAddV
	OpSubV
	OpMulVF // vector * float -> vector
	OpMulFV // float * vector -> vector
	OpMulV  // vector * vector -> float (dot product)
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpBitAnd
	OpBitOr
	OpNegF
	OpNegV
	OpNot
)

// IsComparison reports whether op is one of the six relational opcodes.
func (op Opcode) IsComparison() bool {
	return op >= OpEq && op <= OpGe
}

func (op Opcode) String() string {
	switch op {
	case OpAddF:
		return "add.f"
	case OpSubF:
		return "sub.f"
	case OpMulF:
		return "mul.f"
	case OpDivF:
		return "div.f"
	case OpAddV:
		return "add.v"
	case OpSubV:
		return "sub.v"
	case OpMulVF:
		return "mul.vf"
	case OpMulFV:
		return "mul.fv"
	case OpMulV:
		return "mul.v"
	case OpEq:
		return "eq"
	case OpNe:
		return "ne"
	case OpLt:
		return "lt"
	case OpLe:
		return "le"
	case OpGt:
		return "gt"
	case OpGe:
		return "ge"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpBitAnd:
		return "bitand"
	case OpBitOr:
		return "bitor"
	case OpNegF:
		return "neg.f"
	case OpNegV:
		return "neg.v"
	case OpNot:
		return "not"
	default:
		return "op?"
	}
}

// BinaryResultType derives a Binary node's result type from its opcode
// and its left operand's type, mirroring ast_binary_new's switch: the
// six comparison opcodes and the boolean/bitwise opcodes always yield
// float, a vector*float or float*vector multiply yields vector, a
// vector dot-product yields float, and everything else defaults to the
// left operand's type.
func BinaryResultType(op Opcode, left types.ValueType) types.ValueType {
	switch {
	case op.IsComparison():
		return types.TypeFloat
	case op == OpAnd || op == OpOr || op == OpBitAnd || op == OpBitOr:
		return types.TypeFloat
	case op == OpMulVF || op == OpMulFV:
		return types.TypeVector
	case op == OpMulV:
		return types.TypeFloat
	default:
		return left
	}
}
