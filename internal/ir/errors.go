package ir

import "errors"

var (
	// ErrBlockAlreadyTerminated indicates an emit-jump/emit-conditional-
	// branch/emit-return was attempted on a block that already has a
	// terminator. CreatePhi also returns it when the target block already
	// holds any instruction, since a phi must come first. A well-formed
	// CFG never triggers this from the lowering pass; tripping it
	// indicates a bug in the traversal.
	ErrBlockAlreadyTerminated = errors.New("ir: block already terminated")

	// ErrPhiTypeMismatch indicates two incoming values of a phi have
	// different types.
	ErrPhiTypeMismatch = errors.New("ir: phi incoming values have mismatched types")

	// ErrInvalidVectorComponent indicates extract-vector-component was
	// asked for an index outside {0,1,2}.
	ErrInvalidVectorComponent = errors.New("ir: vector component index out of range")

	// ErrBlockIndexOutOfRange indicates RemoveBlockAt was called with an
	// out-of-range index.
	ErrBlockIndexOutOfRange = errors.New("ir: block index out of range")

	// ErrDuplicateGlobal indicates a global/field/function of the same
	// name was already created in this module.
	ErrDuplicateGlobal = errors.New("ir: duplicate global name")
)
