package lower

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
)

// lowerIfThen lowers the condition in the entering block, then each
// present branch in its own freshly created block, then creates the
// merge block and wires jumps and the conditional branch only once
// every block exists — so the function's block list comes out in
// natural reading order instead of needing a later reordering pass.
// Each branch's jump-to-merge is wired from endOnTrue/endOnFalse (the
// block current after lowering the branch), not from onTrue/onFalse
// themselves — a branch whose body is itself an IfThen/Ternary/Loop
// advances fn.CurBlock to its own exit block before returning here.
// A branch whose last block is already terminated (for example by a
// return) gets no jump to merge.
// IfThen produces no value; callers never consume its result.
func (lw *Lowerer) lowerIfThen(n *ast.IfThen, fn *ast.Function) (*ir.Value, error) {
	condBlock := fn.CurBlock
	fn.CurBlock = condBlock
	condVal, err := lw.lowerExpr(n.Cond, fn, false)
	if err != nil {
		return nil, err
	}

	var onTrue, onFalse, endOnTrue, endOnFalse *ir.BasicBlock
	if n.OnTrue != nil {
		onTrue, err = lw.createBlock(fn, fn.Label("ontrue"))
		if err != nil {
			return nil, err
		}
		fn.CurBlock = onTrue
		if _, err := lw.lowerExpr(n.OnTrue, fn, false); err != nil {
			return nil, err
		}
		endOnTrue = fn.CurBlock
	}
	if n.OnFalse != nil {
		onFalse, err = lw.createBlock(fn, fn.Label("onfalse"))
		if err != nil {
			return nil, err
		}
		fn.CurBlock = onFalse
		if _, err := lw.lowerExpr(n.OnFalse, fn, false); err != nil {
			return nil, err
		}
		endOnFalse = fn.CurBlock
	}

	merge, err := lw.createBlock(fn, fn.Label("endif"))
	if err != nil {
		return nil, err
	}
	if onTrue != nil && !endOnTrue.IsTerminated() {
		if err := lw.Builder.EmitJump(endOnTrue, merge); err != nil {
			return nil, err
		}
	}
	if onFalse != nil && !endOnFalse.IsTerminated() {
		if err := lw.Builder.EmitJump(endOnFalse, merge); err != nil {
			return nil, err
		}
	}

	trueTarget, falseTarget := merge, merge
	if onTrue != nil {
		trueTarget = onTrue
	}
	if onFalse != nil {
		falseTarget = onFalse
	}
	if err := lw.Builder.EmitCondBranch(condBlock, condVal, trueTarget, falseTarget); err != nil {
		return nil, err
	}

	fn.CurBlock = merge
	return nil, nil
}
