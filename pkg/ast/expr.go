package ast

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Expr is the capability every expression node satisfies on top of Node:
// a result type, an optional next-type carrying a payload type (field's
// element type, function's return type), an ordered parameter list
// (populating function-type arities), and the left/right IR-value cache
// used to memoize a node that has already been lowered once.
//
// There is deliberately no stored codegen function pointer here; the C
// source's per-node function pointer is a vtable substitute, and in Go
// the lowering pass (internal/lower) dispatches on the concrete type
// with an ordinary type switch instead.
type Expr interface {
	Node
	ResultType() types.ValueType
	SetResultType(types.ValueType)
	NextType() Expr
	SetNextType(Expr)
	Params() []*Value
	AddParam(*Value)
	CachedOutL() *ir.Value
	SetCachedOutL(*ir.Value)
	CachedOutR() *ir.Value
	SetCachedOutR(*ir.Value)
}

// ExprBase is the common header every expression node embeds. Zero value
// is result type void, absent next-type, empty parameter list and an
// unset cache, matching ast_expression_init's zero-initialization.
type ExprBase struct {
	resultType types.ValueType
	next       Expr
	params     []*Value
	outL       *ir.Value
	outR       *ir.Value
}

func (e *ExprBase) ResultType() types.ValueType         { return e.resultType }
func (e *ExprBase) SetResultType(t types.ValueType)     { e.resultType = t }
func (e *ExprBase) NextType() Expr                      { return e.next }
func (e *ExprBase) SetNextType(n Expr)                  { e.next = n }
func (e *ExprBase) Params() []*Value                    { return e.params }
func (e *ExprBase) AddParam(p *Value)                   { e.params = append(e.params, p) }
func (e *ExprBase) CachedOutL() *ir.Value                { return e.outL }
func (e *ExprBase) SetCachedOutL(v *ir.Value)            { e.outL = v }
func (e *ExprBase) CachedOutR() *ir.Value                { return e.outR }
func (e *ExprBase) SetCachedOutR(v *ir.Value)            { e.outR = v }

// destroyExprBase releases the next-type and every parameter Value.
// Parameters are owned even though they are Values, because signatures
// are built bottom-up at parse time and nothing else references them
// until the owning Value/Function installs itself in a symbol table.
func (e *ExprBase) destroyExprBase() {
	if e.next != nil {
		Delete(e.next)
		e.next = nil
	}
	for _, p := range e.params {
		Delete(p)
	}
	e.params = nil
}
