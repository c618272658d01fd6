package lower

import (
	"testing"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// TestLowerLoopExceedsMaxLoopDepth covers Limits.MaxLoopDepth actually
// being enforced: a Loop nested one level deeper than the configured
// bound must fail rather than lower silently.
func TestLowerLoopExceedsMaxLoopDepth(t *testing.T) {
	lw := New(ir.NewModule())
	lw.Limits.MaxLoopDepth = 1
	fn := newTestFunction(t, lw)

	inner := ast.NewLoop(ast.Context{}, nil, nil, nil, nil, nil)
	outer := ast.NewLoop(ast.Context{}, nil, nil, nil, nil, inner)

	if _, err := lw.lowerLoop(outer, fn); err != ErrLoopNestingTooDeep {
		t.Fatalf("expected ErrLoopNestingTooDeep, got %v", err)
	}
}

// TestLowerLoopRestoresDepthAfterSuccess covers that a successfully
// lowered loop decrements LoopDepth back to its prior value, so a
// second sibling loop at the same nesting level isn't wrongly charged
// for the first one's depth.
func TestLowerLoopRestoresDepthAfterSuccess(t *testing.T) {
	lw := New(ir.NewModule())
	fn := newTestFunction(t, lw)

	first := ast.NewLoop(ast.Context{}, nil, nil, nil, nil, nil)
	if _, err := lw.lowerLoop(first, fn); err != nil {
		t.Fatalf("lowerLoop (first) failed: %v", err)
	}
	if fn.LoopDepth != 0 {
		t.Errorf("LoopDepth should be restored to 0 after lowering completes, got %d", fn.LoopDepth)
	}

	second := ast.NewLoop(ast.Context{}, nil, nil, nil, nil, nil)
	if _, err := lw.lowerLoop(second, fn); err != nil {
		t.Fatalf("lowerLoop (second) failed: %v", err)
	}
}

// TestLowerIfThenExceedsMaxBlockCount covers Limits.MaxBlockCount being
// enforced at every block-creation site, not just loop bodies.
func TestLowerIfThenExceedsMaxBlockCount(t *testing.T) {
	lw := New(ir.NewModule())
	lw.Limits.MaxBlockCount = 1
	fn := newTestFunction(t, lw)
	cond := lowerLocalCond(t, lw, fn)

	onTrue := ast.NewValue(ast.Context{}, "t", types.TypeFloat)
	lw.LowerLocal(onTrue, fn, false)

	it, err := ast.NewIfThen(ast.Context{}, cond, onTrue, nil)
	if err != nil {
		t.Fatalf("NewIfThen failed: %v", err)
	}

	if _, err := lw.lowerIfThen(it, fn); err != ErrTooManyBlocks {
		t.Fatalf("expected ErrTooManyBlocks, got %v", err)
	}
}

// TestLowerTernaryExceedsMaxPhiIncoming covers Limits.MaxPhiIncoming
// being enforced on the phi AddIncoming path.
func TestLowerTernaryExceedsMaxPhiIncoming(t *testing.T) {
	lw := New(ir.NewModule())
	lw.Limits.MaxPhiIncoming = 1
	fn := newTestFunction(t, lw)
	cond := lowerLocalCond(t, lw, fn)

	onTrue := ast.NewValue(ast.Context{}, "t", types.TypeFloat)
	lw.LowerLocal(onTrue, fn, false)
	onFalse := ast.NewValue(ast.Context{}, "f", types.TypeFloat)
	lw.LowerLocal(onFalse, fn, false)

	tern, err := ast.NewTernary(ast.Context{}, cond, onTrue, onFalse)
	if err != nil {
		t.Fatalf("NewTernary failed: %v", err)
	}

	if _, err := lw.lowerTernary(tern, fn); err != ErrTooManyPhiIncoming {
		t.Fatalf("expected ErrTooManyPhiIncoming, got %v", err)
	}
}
