package ast

// Ternary is `cond ? onTrue : onFalse`; unlike IfThen, both branches are
// required. Its lowered phi result is memoized in ExprBase's left cache
// (CachedOutL) so that visiting the node twice — e.g. from a future
// AST-level pass — returns the same IR value instead of regenerating
// blocks.
type Ternary struct {
	NodeBase
	ExprBase

	Cond, OnTrue, OnFalse Expr
}

// NewTernary constructs a Ternary node, failing if either branch is nil.
func NewTernary(ctx Context, cond, onTrue, onFalse Expr) (*Ternary, error) {
	if onTrue == nil || onFalse == nil {
		return nil, ErrTernaryBranchMissing
	}
	t := &Ternary{NodeBase: newNodeBase(ctx, KindTernary), Cond: cond, OnTrue: onTrue, OnFalse: onFalse}
	t.SetResultType(onTrue.ResultType())
	return t, nil
}

func (t *Ternary) Destroy() {
	t.markDestroyed()
	Unref(t.Cond)
	Unref(t.OnTrue)
	Unref(t.OnFalse)
	t.destroyExprBase()
}
