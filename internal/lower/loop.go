package lower

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
)

// lowerLoop builds the CFG for all five optional slots (init, precond,
// postcond, increment, body). Blocks likely to be the target of a
// 'break' or 'continue' are created before the body is lowered, even
// though some of them (increment, postcond) aren't filled in until
// after the body — so that a nested break/continue can resolve its
// target immediately. Blocks are created in the order precond, body,
// increment, postcond, exit. The exit block is created early too (so its
// ordinal position is known for the final move-to-end step) but filled
// with nothing until every other block exists, then moved to the end of
// the function's block list once all wiring is done.
func (lw *Lowerer) lowerLoop(n *ast.Loop, fn *ast.Function) (*ir.Value, error) {
	fn.LoopDepth++
	if fn.LoopDepth > lw.Limits.MaxLoopDepth {
		return nil, ErrLoopNestingTooDeep
	}
	defer func() { fn.LoopDepth-- }()

	if n.Init != nil {
		if _, err := lw.lowerExpr(n.Init, fn, false); err != nil {
			return nil, err
		}
	}

	bin := fn.CurBlock

	var bprecond, endBprecond *ir.BasicBlock
	var precondVal *ir.Value
	var err error
	var continueTarget *ir.BasicBlock

	if n.Precond != nil {
		bprecond, err = lw.createBlock(fn, fn.Label("pre_loop_cond"))
		if err != nil {
			return nil, err
		}
		continueTarget = bprecond

		fn.CurBlock = bprecond
		precondVal, err = lw.lowerExpr(n.Precond, fn, false)
		if err != nil {
			return nil, err
		}
		endBprecond = fn.CurBlock
	}

	var bbody *ir.BasicBlock
	if n.Body != nil {
		bbody, err = lw.createBlock(fn, fn.Label("loop_body"))
		if err != nil {
			return nil, err
		}
	}

	var bincrement *ir.BasicBlock
	if n.Increment != nil {
		bincrement, err = lw.createBlock(fn, fn.Label("loop_increment"))
		if err != nil {
			return nil, err
		}
		continueTarget = bincrement
	}

	var bpostcond *ir.BasicBlock
	if n.Postcond != nil {
		bpostcond, err = lw.createBlock(fn, fn.Label("post_loop_cond"))
		if err != nil {
			return nil, err
		}
		continueTarget = bpostcond
	}

	bout, err := lw.createBlock(fn, fn.Label("after_loop"))
	if err != nil {
		return nil, err
	}
	breakTarget := bout

	var endBbody *ir.BasicBlock
	if n.Body != nil {
		fn.CurBlock = bbody

		oldBreak, oldContinue := fn.BreakTarget, fn.ContinueTarget
		fn.BreakTarget, fn.ContinueTarget = breakTarget, continueTarget

		if _, err := lw.lowerExpr(n.Body, fn, false); err != nil {
			return nil, err
		}
		endBbody = fn.CurBlock

		fn.BreakTarget, fn.ContinueTarget = oldBreak, oldContinue
	}

	var endBpostcond *ir.BasicBlock
	var postcondVal *ir.Value
	if n.Postcond != nil {
		fn.CurBlock = bpostcond
		postcondVal, err = lw.lowerExpr(n.Postcond, fn, false)
		if err != nil {
			return nil, err
		}
		endBpostcond = fn.CurBlock
	}

	var endBincrement *ir.BasicBlock
	if n.Increment != nil {
		fn.CurBlock = bincrement
		if _, err := lw.lowerExpr(n.Increment, fn, false); err != nil {
			return nil, err
		}
		endBincrement = fn.CurBlock
	}

	fn.CurBlock = bout

	entryTarget := firstOf(bprecond, bbody, bpostcond, bout)
	if err := lw.Builder.EmitJump(bin, entryTarget); err != nil {
		return nil, err
	}

	if bprecond != nil {
		onTrue := firstOf(bbody, bincrement, bpostcond, bprecond)
		if err := lw.Builder.EmitCondBranch(endBprecond, precondVal, onTrue, bout); err != nil {
			return nil, err
		}
	}

	if bbody != nil {
		target := firstOf(bincrement, bpostcond, bprecond, bout)
		if err := lw.Builder.EmitJump(endBbody, target); err != nil {
			return nil, err
		}
	}

	if bincrement != nil {
		target := firstOf(bpostcond, bprecond, bbody, bout)
		if err := lw.Builder.EmitJump(endBincrement, target); err != nil {
			return nil, err
		}
	}

	if bpostcond != nil {
		onTrue := firstOf(bprecond, bbody, bincrement, bpostcond)
		if err := lw.Builder.EmitCondBranch(endBpostcond, postcondVal, onTrue, bout); err != nil {
			return nil, err
		}
	}

	if err := lw.Builder.MoveBlockToEnd(fn.IRFunc, bout); err != nil {
		return nil, err
	}

	return nil, nil
}

// firstOf returns the first non-nil block among candidates, in order.
func firstOf(candidates ...*ir.BasicBlock) *ir.BasicBlock {
	for _, b := range candidates {
		if b != nil {
			return b
		}
	}
	return nil
}
