package program

import "github.com/wbumiller/gmqcc/pkg/types"

var (
	ErrUnknownType       = &types.Error{Kind: types.ErrKindInvariant, Msg: "program: unknown type name"}
	ErrUnknownOpcode     = &types.Error{Kind: types.ErrKindInvariant, Msg: "program: unknown opcode mnemonic"}
	ErrUnknownExprKind    = &types.Error{Kind: types.ErrKindInvariant, Msg: "program: unknown expression kind"}
	ErrUndefinedSymbol    = &types.Error{Kind: types.ErrKindUseBeforeDef, Msg: "program: reference to undefined symbol"}
	ErrDuplicateSymbol    = &types.Error{Kind: types.ErrKindInvariant, Msg: "program: duplicate symbol name"}
	ErrMissingConstant    = &types.Error{Kind: types.ErrKindInvariant, Msg: "program: const value missing for declared type"}
)
