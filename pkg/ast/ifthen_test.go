package ast

import (
	"testing"

	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestNewIfThenRequiresABranch(t *testing.T) {
	cond := NewValue(Context{}, "", types.TypeFloat)
	if _, err := NewIfThen(Context{}, cond, nil, nil); err == nil {
		t.Error("NewIfThen should fail when both branches are absent")
	}
}

func TestNewIfThenAcceptsOneBranch(t *testing.T) {
	cond := NewValue(Context{}, "", types.TypeFloat)
	onTrue := NewValue(Context{}, "", types.TypeFloat)
	it, err := NewIfThen(Context{}, cond, onTrue, nil)
	if err != nil {
		t.Fatalf("NewIfThen failed: %v", err)
	}
	if it.OnFalse != nil {
		t.Error("OnFalse should remain nil when not supplied")
	}
	if it.ResultType() != types.TypeVoid {
		t.Errorf("IfThen result type should be void, got %v", it.ResultType())
	}
}
