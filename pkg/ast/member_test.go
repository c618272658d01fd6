package ast

import (
	"testing"

	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestNewMemberOnVector(t *testing.T) {
	owner := NewValue(Context{}, "origin", types.TypeVector)
	m, err := NewMember(Context{}, owner, 1)
	if err != nil {
		t.Fatalf("NewMember failed: %v", err)
	}
	if m.ResultType() != types.TypeFloat {
		t.Errorf("vector member result type = %v, want %v", m.ResultType(), types.TypeFloat)
	}
}

func TestNewMemberRejectsOutOfRangeIndex(t *testing.T) {
	owner := NewValue(Context{}, "origin", types.TypeVector)
	if _, err := NewMember(Context{}, owner, 3); err == nil {
		t.Error("NewMember should reject field index >= 3")
	}
}

func TestNewMemberRejectsInvalidOwner(t *testing.T) {
	owner := NewValue(Context{}, "x", types.TypeFloat)
	if _, err := NewMember(Context{}, owner, 0); err == nil {
		t.Error("NewMember should reject a non-vector, non-field-of-vector owner")
	}
}

func TestNewMemberOnFieldOfVector(t *testing.T) {
	owner := NewValue(Context{}, "origin", types.TypeField)
	owner.SetNextType(NewValue(Context{}, "", types.TypeVector))

	m, err := NewMember(Context{}, owner, 2)
	if err != nil {
		t.Fatalf("NewMember failed: %v", err)
	}
	if m.ResultType() != types.TypeField {
		t.Errorf("field-of-vector member result type = %v, want %v", m.ResultType(), types.TypeField)
	}
	if m.NextType() == nil || m.NextType().ResultType() != types.TypeFloat {
		t.Error("field-of-vector member should have a float next-type")
	}
}
