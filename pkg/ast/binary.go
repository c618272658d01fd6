package ast

import "github.com/wbumiller/gmqcc/internal/ir"

// Binary is a binary operator expression. Its result type is derived
// from the opcode and the left operand's type (see ir.BinaryResultType)
// at construction time — there is no later type-inference pass.
type Binary struct {
	NodeBase
	ExprBase

	Op          ir.Opcode
	Left, Right Expr
}

// NewBinary constructs a Binary node, deriving its result type from op
// and left's type.
func NewBinary(ctx Context, op ir.Opcode, left, right Expr) *Binary {
	b := &Binary{NodeBase: newNodeBase(ctx, KindBinary), Op: op, Left: left, Right: right}
	b.SetResultType(ir.BinaryResultType(op, left.ResultType()))
	return b
}

// Destroy releases the left and right operands (honoring Keep — Value
// operands are shared) and the expression-base children.
func (b *Binary) Destroy() {
	b.markDestroyed()
	Unref(b.Left)
	Unref(b.Right)
	b.destroyExprBase()
}
