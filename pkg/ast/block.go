package ast

// Block is an ordered sequence of local Value declarations followed by
// an ordered sequence of child expressions; it evaluates to the last
// child's value (comma-sequence semantics). Locals are lexically scoped
// to the block and are never shared the way a global Value might be, so
// Block deletes them outright rather than going through Unref/Keep.
type Block struct {
	NodeBase
	ExprBase

	Locals []*Value
	Exprs  []Expr
}

// NewBlock constructs an empty Block; locals and expressions are
// appended in parser order via AddLocal/AddExpr.
func NewBlock(ctx Context) *Block {
	return &Block{NodeBase: newNodeBase(ctx, KindBlock)}
}

// AddLocal appends a local Value declaration, in declaration order.
func (b *Block) AddLocal(v *Value) { b.Locals = append(b.Locals, v) }

// AddExpr appends a child expression, in statement order.
func (b *Block) AddExpr(e Expr) { b.Exprs = append(b.Exprs, e) }

// SetType copies result-type metadata (result type + cloned next-type)
// from another expression, discarding whatever next-type this block
// already owned.
func (b *Block) SetType(from Expr) {
	if old := b.NextType(); old != nil {
		Delete(old)
		b.SetNextType(nil)
	}
	b.SetResultType(from.ResultType())
	if next := from.NextType(); next != nil {
		b.SetNextType(CloneType(b.Ctx(), next))
	}
}

// Destroy unrefs every child expression (honoring Keep on any that
// reference a shared Value), then unconditionally deletes every local —
// locals belong exclusively to their declaring block.
func (b *Block) Destroy() {
	b.markDestroyed()
	for _, e := range b.Exprs {
		Unref(e)
	}
	b.Exprs = nil
	for _, l := range b.Locals {
		Delete(l)
	}
	b.Locals = nil
	b.destroyExprBase()
}
