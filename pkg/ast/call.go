package ast

// Call is a function call: Callee applied to an ordered argument list.
type Call struct {
	NodeBase
	ExprBase

	Callee Expr
	Args   []Expr
}

// NewCall constructs a Call node. Its result type follows the callee's
// next-type (the function's return type) when known, else void.
func NewCall(ctx Context, callee Expr, args []Expr) *Call {
	c := &Call{NodeBase: newNodeBase(ctx, KindCall), Callee: callee, Args: args}
	if next := callee.NextType(); next != nil {
		c.SetResultType(next.ResultType())
	}
	return c
}

func (c *Call) Destroy() {
	c.markDestroyed()
	Unref(c.Callee)
	for _, a := range c.Args {
		Unref(a)
	}
	c.destroyExprBase()
}
