package ir

import "github.com/wbumiller/gmqcc/pkg/types"

// Function is an IR function: an ordered block list (layout order,
// which matters — see MoveBlockToEnd), a parameter type list, a return
// type, and a builtin index (0 = not a builtin).
type Function struct {
	Value        *Value
	Params       []types.ValueType
	ReturnType   types.ValueType
	Blocks       []*BasicBlock
	BuiltinIndex int
}

// AppendParamType records one more parameter type on the function's
// signature, in declaration order.
func (f *Function) AppendParamType(t types.ValueType) {
	f.Params = append(f.Params, t)
}

// CreateBlock appends a new basic block to the function and returns it.
func (f *Function) CreateBlock(label string) *BasicBlock {
	b := newBasicBlock(label)
	f.Blocks = append(f.Blocks, b)
	return b
}

// MoveBlockToEnd removes block b from its current position and appends
// it, so the
// function's block list matches textual/layout flow after a loop's
// exit block was pre-created early (for break-target resolution) but
// belongs at the end.
func (f *Function) MoveBlockToEnd(b *BasicBlock) error {
	idx := -1
	for i, blk := range f.Blocks {
		if blk == b {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrBlockIndexOutOfRange
	}
	f.Blocks = append(f.Blocks[:idx], f.Blocks[idx+1:]...)
	f.Blocks = append(f.Blocks, b)
	return nil
}

// RemoveBlockAt deletes the block at the given index outright (used by
// Builder.DeleteBlock).
func (f *Function) RemoveBlockAt(i int) error {
	if i < 0 || i >= len(f.Blocks) {
		return ErrBlockIndexOutOfRange
	}
	f.Blocks = append(f.Blocks[:i], f.Blocks[i+1:]...)
	return nil
}
