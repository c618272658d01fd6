package lower

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
)

// lowerTernary memoizes its phi result in CachedOutL so a node visited
// twice returns the same value instead of emitting duplicate blocks.
// Both branches are lowered into their own freshly created blocks
// before the merge block and phi are built, mirroring lowerIfThen's
// block-then-wire ordering but requiring both sides. It takes no
// lvalue flag: an lvalue request from the caller is ignored and the phi
// value is returned either way. The jump-to-merge and the phi's incoming
// edges are wired from endOnTrue/endOnFalse (the block current after
// lowering each branch), not from onTrue/onFalse themselves — a branch
// whose body is itself an IfThen/Ternary/Loop advances fn.CurBlock to
// its own exit block, which is merge's real predecessor.
func (lw *Lowerer) lowerTernary(n *ast.Ternary, fn *ast.Function) (*ir.Value, error) {
	if cached := n.CachedOutL(); cached != nil {
		return cached, nil
	}

	condBlock := fn.CurBlock
	condVal, err := lw.lowerExpr(n.Cond, fn, false)
	if err != nil {
		return nil, err
	}

	onTrue, err := lw.createBlock(fn, fn.Label("tern_T"))
	if err != nil {
		return nil, err
	}
	fn.CurBlock = onTrue
	trueVal, err := lw.lowerExpr(n.OnTrue, fn, false)
	if err != nil {
		return nil, err
	}
	endOnTrue := fn.CurBlock

	onFalse, err := lw.createBlock(fn, fn.Label("tern_F"))
	if err != nil {
		return nil, err
	}
	fn.CurBlock = onFalse
	falseVal, err := lw.lowerExpr(n.OnFalse, fn, false)
	if err != nil {
		return nil, err
	}
	endOnFalse := fn.CurBlock

	merge, err := lw.createBlock(fn, fn.Label("tern_out"))
	if err != nil {
		return nil, err
	}
	if err := lw.Builder.EmitJump(endOnTrue, merge); err != nil {
		return nil, err
	}
	if err := lw.Builder.EmitJump(endOnFalse, merge); err != nil {
		return nil, err
	}
	if err := lw.Builder.EmitCondBranch(condBlock, condVal, onTrue, onFalse); err != nil {
		return nil, err
	}

	fn.CurBlock = merge

	if trueVal.Type != falseVal.Type {
		return nil, ErrTernaryTypeMismatch
	}

	phi, err := lw.Builder.CreatePhi(merge, fn.Label("phi"), trueVal.Type)
	if err != nil {
		return nil, err
	}
	if err := lw.addIncoming(phi, endOnTrue, trueVal); err != nil {
		return nil, err
	}
	if err := lw.addIncoming(phi, endOnFalse, falseVal); err != nil {
		return nil, err
	}

	out := phi.Dest
	n.SetCachedOutL(out)
	return out, nil
}
