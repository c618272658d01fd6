package ast

import (
	"errors"

	"github.com/wbumiller/gmqcc/pkg/types"
)

var (
	// ErrMissingDestructor indicates a concrete node kind was constructed
	// without wiring a destroy implementation. It is a program bug, not
	// an in-band failure, and Delete panics rather than returning it.
	ErrMissingDestructor = errors.New("ast: node missing destroy implementation")

	// ErrAlreadyDestroyed indicates Delete was called twice on the same
	// node. Also a program bug.
	ErrAlreadyDestroyed = errors.New("ast: node already destroyed")

	// ErrBothBranchesAbsent is returned by NewIfThen when neither branch
	// was supplied.
	ErrBothBranchesAbsent = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: ifthen requires at least one branch"}

	// ErrTernaryBranchMissing is returned by NewTernary when either
	// branch is nil.
	ErrTernaryBranchMissing = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: ternary requires both branches"}

	// ErrMemberIndexOutOfRange is returned by NewMember for field >= 3.
	ErrMemberIndexOutOfRange = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: member field index out of range"}

	// ErrMemberInvalidOwner is returned by NewMember when the owner is
	// neither a vector nor a field-of-vector.
	ErrMemberInvalidOwner = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: member owner must be vector or field-of-vector"}

	// ErrEntFieldNotField is returned by NewEntField when the field
	// operand does not have field type.
	ErrEntFieldNotField = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: entfield requires a field-typed operand"}

	// ErrEntFieldNoPayload is returned by NewEntField when the field
	// operand lacks a next-type (payload type).
	ErrEntFieldNoPayload = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: entfield operand has no payload type"}

	// ErrFunctionBadSignature is returned by NewFunction when the
	// supplied signature Value is not a non-const function-typed value.
	ErrFunctionBadSignature = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: function requires a non-const function-typed signature value"}

	// ErrTooManyParams is returned by Limits.ValidateFunction when a
	// signature exceeds the configured parameter-count bound.
	ErrTooManyParams = &types.Error{Kind: types.ErrKindInvariant, Msg: "ast: function exceeds maximum parameter count"}
)
