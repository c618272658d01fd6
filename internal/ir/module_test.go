package ir

import (
	"testing"

	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestCreateGlobalRejectsDuplicateNames(t *testing.T) {
	m := NewModule()
	if _, err := m.CreateGlobal("self", types.TypeEntity); err != nil {
		t.Fatalf("first CreateGlobal failed: %v", err)
	}
	if _, err := m.CreateGlobal("self", types.TypeFloat); err == nil {
		t.Error("a duplicate global name should be rejected")
	}
}

func TestEmitBinOpRejectsTerminatedBlock(t *testing.T) {
	m := NewModule()
	fn, err := m.CreateFunction("f", types.TypeVoid)
	if err != nil {
		t.Fatalf("CreateFunction failed: %v", err)
	}
	b := m.CreateBlock(fn, "entry")
	if err := m.EmitReturn(b, nil); err != nil {
		t.Fatalf("EmitReturn failed: %v", err)
	}

	left := m.newValue("a", types.TypeFloat, false)
	right := m.newValue("b", types.TypeFloat, false)
	if _, err := m.EmitBinOp(b, "r", OpAddF, left, right); err == nil {
		t.Error("emitting into a terminated block should fail")
	}
}

func TestEmitJumpTracksPredecessors(t *testing.T) {
	m := NewModule()
	fn, _ := m.CreateFunction("f", types.TypeVoid)
	from := m.CreateBlock(fn, "from")
	to := m.CreateBlock(fn, "to")

	if err := m.EmitJump(from, to); err != nil {
		t.Fatalf("EmitJump failed: %v", err)
	}
	if len(to.Predecessors) != 1 || to.Predecessors[0] != from {
		t.Error("target block should record from as a predecessor")
	}
	if !from.IsTerminated() {
		t.Error("a jump should terminate its source block")
	}
}

func TestAddIncomingRejectsTypeMismatch(t *testing.T) {
	m := NewModule()
	fn, _ := m.CreateFunction("f", types.TypeVoid)
	b := m.CreateBlock(fn, "merge")

	phi, err := m.CreatePhi(b, "phi", types.TypeFloat)
	if err != nil {
		t.Fatalf("CreatePhi failed: %v", err)
	}
	vecVal := m.newValue("v", types.TypeVector, false)
	if err := m.AddIncoming(phi, b, vecVal); err == nil {
		t.Error("AddIncoming should reject a type-mismatched incoming value")
	}
}

func TestMoveBlockToEndReordersBlocks(t *testing.T) {
	m := NewModule()
	fn, _ := m.CreateFunction("f", types.TypeVoid)
	first := m.CreateBlock(fn, "first")
	out := m.CreateBlock(fn, "out")
	last := m.CreateBlock(fn, "last")

	if err := m.MoveBlockToEnd(fn, out); err != nil {
		t.Fatalf("MoveBlockToEnd failed: %v", err)
	}
	if fn.Blocks[len(fn.Blocks)-1] != out {
		t.Error("out should now be the last block")
	}
	if fn.Blocks[0] != first || fn.Blocks[1] != last {
		t.Error("remaining blocks should keep their relative order")
	}
}
