package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// Return is a return statement with an optional operand. It is always a
// terminator once lowered.
type Return struct {
	NodeBase
	ExprBase

	Operand Expr // nil for a bare `return;`
}

// NewReturn constructs a Return node.
func NewReturn(ctx Context, operand Expr) *Return {
	r := &Return{NodeBase: newNodeBase(ctx, KindReturn), Operand: operand}
	r.SetResultType(types.TypeVoid)
	return r
}

func (r *Return) Destroy() {
	r.markDestroyed()
	Unref(r.Operand)
	r.destroyExprBase()
}
