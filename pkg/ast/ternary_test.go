package ast

import (
	"testing"

	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestNewTernaryRequiresBothBranches(t *testing.T) {
	cond := NewValue(Context{}, "", types.TypeFloat)
	onTrue := NewValue(Context{}, "", types.TypeFloat)

	if _, err := NewTernary(Context{}, cond, onTrue, nil); err == nil {
		t.Error("NewTernary should fail when OnFalse is nil")
	}
	if _, err := NewTernary(Context{}, cond, nil, onTrue); err == nil {
		t.Error("NewTernary should fail when OnTrue is nil")
	}
}

func TestNewTernaryResultTypeFollowsOnTrue(t *testing.T) {
	cond := NewValue(Context{}, "", types.TypeFloat)
	onTrue := NewValue(Context{}, "", types.TypeVector)
	onFalse := NewValue(Context{}, "", types.TypeVector)

	tern, err := NewTernary(Context{}, cond, onTrue, onFalse)
	if err != nil {
		t.Fatalf("NewTernary failed: %v", err)
	}
	if tern.ResultType() != types.TypeVector {
		t.Errorf("ResultType() = %v, want %v", tern.ResultType(), types.TypeVector)
	}
	if tern.CachedOutL() != nil {
		t.Error("a freshly constructed Ternary should not have a memoized phi yet")
	}
}
