package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// Loop handles every composite loop shape (for/while/do-while) through
// five independent, optional slots. Any subset may be present; a Loop
// with every slot nil still lowers to a well-formed (degenerate) CFG.
type Loop struct {
	NodeBase
	ExprBase

	Init      Expr
	Precond   Expr
	Postcond  Expr
	Increment Expr
	Body      Expr
}

// NewLoop constructs a Loop node from its (possibly nil) slots.
func NewLoop(ctx Context, init, precond, postcond, increment, body Expr) *Loop {
	l := &Loop{
		NodeBase:  newNodeBase(ctx, KindLoop),
		Init:      init,
		Precond:   precond,
		Postcond:  postcond,
		Increment: increment,
		Body:      body,
	}
	l.SetResultType(types.TypeVoid)
	return l
}

func (l *Loop) Destroy() {
	l.markDestroyed()
	Unref(l.Init)
	Unref(l.Precond)
	Unref(l.Postcond)
	Unref(l.Increment)
	Unref(l.Body)
	l.destroyExprBase()
}
