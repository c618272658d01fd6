package ast

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Unary is a unary operator expression (negation, logical/bitwise not).
type Unary struct {
	NodeBase
	ExprBase

	Op      ir.Opcode
	Operand Expr
}

// NewUnary constructs a Unary node. Result type follows the operand's
// type, except OpNot which always yields float (a 0/1 boolean result).
func NewUnary(ctx Context, op ir.Opcode, operand Expr) *Unary {
	u := &Unary{NodeBase: newNodeBase(ctx, KindUnary), Op: op, Operand: operand}
	if op == ir.OpNot {
		u.SetResultType(types.TypeFloat)
	} else {
		u.SetResultType(operand.ResultType())
	}
	return u
}

func (u *Unary) Destroy() {
	u.markDestroyed()
	Unref(u.Operand)
	u.destroyExprBase()
}
