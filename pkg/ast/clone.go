package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// TypeSkeleton is a minimal expression used only to carry type metadata
// (result type, next-type, parameter types). It is never lowered — the
// lowering pass's type switch has no case for it, and CloneType and
// shallowType are its only constructors, so a TypeSkeleton can only end up attached to
// another node's NextType or Params, never traversed directly.
type TypeSkeleton struct {
	NodeBase
	ExprBase
}

func (t *TypeSkeleton) Destroy() {
	t.markDestroyed()
	t.destroyExprBase()
}

// CloneType deep-copies the type skeleton of an expression: its result
// type, its next-type (recursively) and its parameter types, in order.
// The clone carries no codegen capability and owns everything it holds,
// so it must always be explicitly deleted (or attached and owned) by
// the caller.
func CloneType(ctx Context, e Expr) *TypeSkeleton {
	if e == nil {
		return nil
	}
	clone := &TypeSkeleton{NodeBase: newNodeBase(ctx, KindValue)}
	clone.SetResultType(e.ResultType())
	if next := e.NextType(); next != nil {
		clone.SetNextType(CloneType(ctx, next))
	}
	for _, p := range e.Params() {
		pc := NewValue(ctx, "", p.ResultType())
		pc.SetKeep(false)
		clone.AddParam(pc)
	}
	return clone
}

// shallowType builds a parameter-less, next-type-less type skeleton for
// a scalar type — used by Member when it synthesizes a field-of-float
// type for a field-of-vector owner.
func shallowType(ctx Context, vtype types.ValueType) *TypeSkeleton {
	ts := &TypeSkeleton{NodeBase: newNodeBase(ctx, KindValue)}
	ts.SetResultType(vtype)
	return ts
}
