package lower

import (
	"testing"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestLowerTernaryProducesPhi(t *testing.T) {
	lw := New(ir.NewModule())
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

	out, err := lw.lowerTernary(tern, fn)
	if err != nil {
		t.Fatalf("lowerTernary failed: %v", err)
	}
	if out == nil {
		t.Fatal("a ternary should produce a value")
	}
	if fn.CurBlock.FirstPhi() == nil {
		t.Error("the merge block should start with a phi instruction")
	}
}

func TestLowerTernaryIsMemoized(t *testing.T) {
	lw := New(ir.NewModule())
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

	first, err := lw.lowerTernary(tern, fn)
	if err != nil {
		t.Fatalf("first lowerTernary call failed: %v", err)
	}
	blocksAfterFirst := len(fn.IRFunc.Blocks)

	second, err := lw.lowerTernary(tern, fn)
	if err != nil {
		t.Fatalf("second lowerTernary call failed: %v", err)
	}
	if second != first {
		t.Error("lowering the same ternary twice should return the memoized value")
	}
	if len(fn.IRFunc.Blocks) != blocksAfterFirst {
		t.Error("a memoized ternary should not emit additional blocks")
	}
}

// TestLowerTernaryNestedBranchWiresPhiFromEndOfBranch covers an onTrue
// branch that is itself a Ternary, which advances fn.CurBlock to its
// own merge block before the outer phi's incoming edges are wired. The
// outer phi must record that nested merge block as the predecessor,
// not the outer branch's entry block — otherwise the CFG's recorded
// predecessor doesn't match the actual jump wiring.
func TestLowerTernaryNestedBranchWiresPhiFromEndOfBranch(t *testing.T) {
	lw := New(ir.NewModule())
	fn := newTestFunction(t, lw)
	cond := lowerLocalCond(t, lw, fn)

	innerCond := lowerLocalCond(t, lw, fn)
	innerOnTrue := ast.NewValue(ast.Context{}, "it", types.TypeFloat)
	lw.LowerLocal(innerOnTrue, fn, false)
	innerOnFalse := ast.NewValue(ast.Context{}, "if", types.TypeFloat)
	lw.LowerLocal(innerOnFalse, fn, false)
	inner, err := ast.NewTernary(ast.Context{}, innerCond, innerOnTrue, innerOnFalse)
	if err != nil {
		t.Fatalf("NewTernary (inner) failed: %v", err)
	}

	onFalse := ast.NewValue(ast.Context{}, "f", types.TypeFloat)
	lw.LowerLocal(onFalse, fn, false)

	outer, err := ast.NewTernary(ast.Context{}, cond, inner, onFalse)
	if err != nil {
		t.Fatalf("NewTernary (outer) failed: %v", err)
	}

	out, err := lw.lowerTernary(outer, fn)
	if err != nil {
		t.Fatalf("lowerTernary with a nested branch failed: %v", err)
	}
	if out == nil {
		t.Fatal("a nested ternary should still produce a value")
	}

	merge := fn.CurBlock
	phi := merge.FirstPhi()
	if phi == nil {
		t.Fatal("the outer merge block should start with a phi instruction")
	}
	for _, in := range phi.Incoming {
		if in.Block == merge {
			t.Error("phi incoming edge should not record the merge block itself as its own predecessor")
		}
	}
	if len(merge.Predecessors) != 2 {
		t.Errorf("outer merge block should have two predecessors, got %d", len(merge.Predecessors))
	}
	for _, in := range phi.Incoming {
		found := false
		for _, p := range merge.Predecessors {
			if p == in.Block {
				found = true
			}
		}
		if !found {
			t.Errorf("phi incoming block %v is not among the merge block's recorded predecessors", in.Block)
		}
	}
}

func TestLowerTernaryRejectsTypeMismatch(t *testing.T) {
	lw := New(ir.NewModule())
	fn := newTestFunction(t, lw)
	cond := lowerLocalCond(t, lw, fn)

	onTrue := ast.NewValue(ast.Context{}, "t", types.TypeFloat)
	lw.LowerLocal(onTrue, fn, false)
	onFalse := ast.NewValue(ast.Context{}, "v", types.TypeVector)
	lw.LowerLocal(onFalse, fn, false)

	tern, err := ast.NewTernary(ast.Context{}, cond, onTrue, onFalse)
	if err != nil {
		t.Fatalf("NewTernary failed: %v", err)
	}

	if _, err := lw.lowerTernary(tern, fn); err == nil {
		t.Error("mismatched branch types should be rejected")
	}
}
