package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// IfThen is a conditional with optional branches. At least one of
// OnTrue/OnFalse must be present; NewIfThen rejects the case where both
// are absent.
type IfThen struct {
	NodeBase
	ExprBase

	Cond             Expr
	OnTrue, OnFalse  Expr
}

// NewIfThen constructs an IfThen node, failing if both branches are nil.
func NewIfThen(ctx Context, cond, onTrue, onFalse Expr) (*IfThen, error) {
	if onTrue == nil && onFalse == nil {
		return nil, ErrBothBranchesAbsent
	}
	it := &IfThen{NodeBase: newNodeBase(ctx, KindIfThen), Cond: cond, OnTrue: onTrue, OnFalse: onFalse}
	it.SetResultType(types.TypeVoid)
	return it, nil
}

func (it *IfThen) Destroy() {
	it.markDestroyed()
	Unref(it.Cond)
	Unref(it.OnTrue)
	Unref(it.OnFalse)
	it.destroyExprBase()
}
