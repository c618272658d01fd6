package lower

import "github.com/wbumiller/gmqcc/pkg/types"

var (
	// ErrUseBeforeDefinition is reported when an ast.Value is read in an
	// expression before global or local lowering installed its IR
	// back-link. This is a program bug in the caller, not a recoverable
	// condition — but per spec §7 it is still surfaced in-band.
	ErrUseBeforeDefinition = &types.Error{Kind: types.ErrKindUseBeforeDef, Msg: "lower: value used before definition"}

	// ErrTernaryTypeMismatch is reported when a Ternary's two branches
	// lower to IR values of different types.
	ErrTernaryTypeMismatch = &types.Error{Kind: types.ErrKindTypeMismatch, Msg: "lower: ternary branches have mismatched types"}

	// ErrMissingReturn is reported when a non-void function's body
	// doesn't end in a terminator. This check is conservative — it only
	// inspects the final block, not every path — matching the
	// original's documented limitation (see SPEC_FULL.md open question).
	ErrMissingReturn = &types.Error{Kind: types.ErrKindMissingReturn, Msg: "lower: function missing return"}

	// ErrLocalFunction is reported when a local Value of function type
	// is lowered — local functions are not supported.
	ErrLocalFunction = &types.Error{Kind: types.ErrKindUnsupported, Msg: "lower: local function values are not supported"}

	// ErrConstFieldPointer is reported when a const field-typed global
	// is lowered. The original leaves this as an explicit TODO; we
	// surface it as an unsupported-feature error rather than silently
	// accept it (see SPEC_FULL.md open question).
	ErrConstFieldPointer = &types.Error{Kind: types.ErrKindUnsupported, Msg: "lower: constant field pointers are not supported"}

	// ErrUnsupportedConstType is reported when a constant Value carries
	// a result type global/local lowering doesn't know how to set a
	// constant payload for (e.g. TypeFunction globals, which need a
	// function pointer representation the IR doesn't model).
	ErrUnsupportedConstType = &types.Error{Kind: types.ErrKindUnsupported, Msg: "lower: unsupported constant type"}

	// ErrMemberInvalidOwnerType is reported when Member's owner lowers
	// to an IR value whose runtime type isn't vector or field-of-vector,
	// even though construction-time validation passed — for example an
	// EntField owner, whose lvalue lowering yields a pointer-typed field
	// address.
	ErrMemberInvalidOwnerType = &types.Error{Kind: types.ErrKindInvariant, Msg: "lower: member owner is not vector or field-of-vector"}

	// ErrTooManyBlocks is reported when lowering a function would create
	// more IR basic blocks than Limits.MaxBlockCount allows.
	ErrTooManyBlocks = &types.Error{Kind: types.ErrKindLimitExceeded, Msg: "lower: function exceeds max block count"}

	// ErrLoopNestingTooDeep is reported when lowering a Loop would push
	// the function's loop nesting past Limits.MaxLoopDepth.
	ErrLoopNestingTooDeep = &types.Error{Kind: types.ErrKindLimitExceeded, Msg: "lower: loop nesting exceeds max loop depth"}

	// ErrTooManyPhiIncoming is reported when a phi would accumulate more
	// incoming edges than Limits.MaxPhiIncoming allows.
	ErrTooManyPhiIncoming = &types.Error{Kind: types.ErrKindLimitExceeded, Msg: "lower: phi exceeds max incoming edges"}
)
