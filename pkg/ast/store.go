package ast

import "github.com/wbumiller/gmqcc/internal/ir"

// Store is an assignment: Dest := Source, using the given store opcode
// (a plain move, or a compound-assignment opcode already resolved by
// the parser). Lowering produces the destination as an lvalue or the
// source as an rvalue depending on the caller's request.
type Store struct {
	NodeBase
	ExprBase

	Op           ir.Opcode
	Dest, Source Expr
}

// NewStore constructs a Store node; its result type follows the
// destination's type.
func NewStore(ctx Context, op ir.Opcode, dest, source Expr) *Store {
	s := &Store{NodeBase: newNodeBase(ctx, KindStore), Op: op, Dest: dest, Source: source}
	s.SetResultType(dest.ResultType())
	return s
}

func (s *Store) Destroy() {
	s.markDestroyed()
	Unref(s.Dest)
	Unref(s.Source)
	s.destroyExprBase()
}
