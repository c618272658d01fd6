package ir

import "github.com/wbumiller/gmqcc/pkg/types"

// Builder is the abstract IR construction interface the lowering pass
// is specified against (spec §6, "Consumed from the IR builder").
// Module is this package's only implementation; the lowering pass
// (internal/lower) depends only on this interface, never on Module
// directly, so a future bytecode-oriented builder could be swapped in
// without touching the traversal.
type Builder interface {
	CreateFunction(name string, returnType types.ValueType) (*Function, error)
	CreateGlobal(name string, vtype types.ValueType) (*Value, error)
	CreateField(name string, payloadType types.ValueType) (*Value, error)

	CreateLocal(fn *Function, name string, vtype types.ValueType, isParam bool) (*Value, error)

	CreateBlock(fn *Function, label string) *BasicBlock
	AppendBlock(fn *Function, b *BasicBlock)
	RemoveBlockAt(fn *Function, i int) error
	MoveBlockToEnd(fn *Function, b *BasicBlock) error

	AppendParameterType(fn *Function, t types.ValueType)

	EmitBinOp(b *BasicBlock, label string, op Opcode, left, right *Value) (*Value, error)
	EmitUnary(b *BasicBlock, label string, op Opcode, operand *Value) (*Value, error)
	EmitStore(b *BasicBlock, op Opcode, dest, source *Value) error
	EmitReturn(b *BasicBlock, operand *Value) error
	EmitJump(b *BasicBlock, target *BasicBlock) error
	EmitCondBranch(b *BasicBlock, cond *Value, trueBlock, falseBlock *BasicBlock) error
	EmitCall(b *BasicBlock, label string, callee *Value, args []*Value) (*Value, error)
	EmitFieldAddress(b *BasicBlock, label string, entity, field *Value) (*Value, error)
	EmitLoadFromEntity(b *BasicBlock, label string, entity, field *Value, vtype types.ValueType) (*Value, error)

	CreatePhi(b *BasicBlock, label string, vtype types.ValueType) (*Phi, error)
	AddIncoming(phi *Phi, block *BasicBlock, val *Value) error

	ExtractVectorComponent(base *Value, component int) (*Value, error)

	SetFloatConstant(v *Value, f float64)
	SetVectorConstant(v *Value, vec [3]float64)
	SetStringConstant(v *Value, s string)

	DeleteValue(v *Value)
	DeleteBlock(fn *Function, b *BasicBlock) error
}
