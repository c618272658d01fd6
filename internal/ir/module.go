package ir

import "github.com/wbumiller/gmqcc/pkg/types"

// Module is the concrete, in-memory IR builder: a top-level container
// of globals, fields and functions. It implements Builder.
type Module struct {
	Globals   []*Value
	Fields    []*Value
	Functions []*Function

	names  map[string]struct{}
	nextID int
}

// NewModule returns an empty module ready to receive globals and
// functions from a lowering pass.
func NewModule() *Module {
	return &Module{names: make(map[string]struct{})}
}

func (m *Module) newValue(name string, vtype types.ValueType, isParam bool) *Value {
	m.nextID++
	return &Value{id: m.nextID, Name: name, Type: vtype, isParam: isParam}
}

func (m *Module) reserveName(name string) error {
	if name == "" {
		return nil
	}
	if _, exists := m.names[name]; exists {
		return ErrDuplicateGlobal
	}
	m.names[name] = struct{}{}
	return nil
}

// CreateFunction allocates an IR function and its Value (of function
// type); the function body is filled in later by the lowering pass.
func (m *Module) CreateFunction(name string, returnType types.ValueType) (*Function, error) {
	if err := m.reserveName(name); err != nil {
		return nil, err
	}
	v := m.newValue(name, types.TypeFunction, false)
	fn := &Function{Value: v, ReturnType: returnType}
	m.Functions = append(m.Functions, fn)
	return fn, nil
}

// CreateGlobal allocates an uninitialized global value.
func (m *Module) CreateGlobal(name string, vtype types.ValueType) (*Value, error) {
	if err := m.reserveName(name); err != nil {
		return nil, err
	}
	v := m.newValue(name, vtype, false)
	m.Globals = append(m.Globals, v)
	return v, nil
}

// CreateField allocates a field descriptor. The returned value has type
// TypeField; payloadType is not recorded on it.
func (m *Module) CreateField(name string, payloadType types.ValueType) (*Value, error) {
	if err := m.reserveName(name); err != nil {
		return nil, err
	}
	v := m.newValue(name, types.TypeField, false)
	m.Fields = append(m.Fields, v)
	return v, nil
}

// CreateLocal allocates a local (or parameter, when isParam) value
// scoped to fn.
func (m *Module) CreateLocal(fn *Function, name string, vtype types.ValueType, isParam bool) (*Value, error) {
	return m.newValue(name, vtype, isParam), nil
}

func (m *Module) CreateBlock(fn *Function, label string) *BasicBlock {
	return fn.CreateBlock(label)
}

func (m *Module) AppendBlock(fn *Function, b *BasicBlock) {
	fn.Blocks = append(fn.Blocks, b)
}

func (m *Module) RemoveBlockAt(fn *Function, i int) error {
	return fn.RemoveBlockAt(i)
}

func (m *Module) MoveBlockToEnd(fn *Function, b *BasicBlock) error {
	return fn.MoveBlockToEnd(b)
}

func (m *Module) AppendParameterType(fn *Function, t types.ValueType) {
	fn.AppendParamType(t)
}

func (m *Module) EmitBinOp(b *BasicBlock, label string, op Opcode, left, right *Value) (*Value, error) {
	if b.IsTerminated() {
		return nil, ErrBlockAlreadyTerminated
	}
	dest := m.newValue(label, BinaryResultType(op, left.Type), false)
	b.append(&BinOp{Op: op, Dest: dest, Left: left, Right: right})
	return dest, nil
}

func (m *Module) EmitUnary(b *BasicBlock, label string, op Opcode, operand *Value) (*Value, error) {
	if b.IsTerminated() {
		return nil, ErrBlockAlreadyTerminated
	}
	resultType := operand.Type
	if op == OpNot {
		resultType = types.TypeFloat
	}
	dest := m.newValue(label, resultType, false)
	b.append(&UnOp{Op: op, Dest: dest, Operand: operand})
	return dest, nil
}

func (m *Module) EmitStore(b *BasicBlock, op Opcode, dest, source *Value) error {
	if b.IsTerminated() {
		return ErrBlockAlreadyTerminated
	}
	b.append(&StoreOp{Op: op, Dest: dest, Source: source})
	return nil
}

func (m *Module) EmitReturn(b *BasicBlock, operand *Value) error {
	if b.IsTerminated() {
		return ErrBlockAlreadyTerminated
	}
	b.append(&ReturnOp{Operand: operand})
	b.terminated = true
	return nil
}

func (m *Module) EmitJump(b *BasicBlock, target *BasicBlock) error {
	if b.IsTerminated() {
		return ErrBlockAlreadyTerminated
	}
	b.append(&Jump{Target: target})
	b.terminated = true
	target.addPredecessor(b)
	return nil
}

func (m *Module) EmitCondBranch(b *BasicBlock, cond *Value, trueBlock, falseBlock *BasicBlock) error {
	if b.IsTerminated() {
		return ErrBlockAlreadyTerminated
	}
	b.append(&CondBranch{Cond: cond, True: trueBlock, False: falseBlock})
	b.terminated = true
	trueBlock.addPredecessor(b)
	falseBlock.addPredecessor(b)
	return nil
}

func (m *Module) EmitCall(b *BasicBlock, label string, callee *Value, args []*Value) (*Value, error) {
	if b.IsTerminated() {
		return nil, ErrBlockAlreadyTerminated
	}
	dest := m.newValue(label, returnTypeOfCallable(callee), false)
	b.append(&CallOp{Dest: dest, Callee: callee, Args: args})
	return dest, nil
}

// returnTypeOfCallable is a small helper: a callee Value of function
// type doesn't carry its return type directly (that lives on the
// matching ast.Function/ir.Function pairing), so the lowering pass sets
// Dest.Type explicitly when it knows better; this is the conservative
// fallback for calls to callees lowered only as bare Values.
func returnTypeOfCallable(callee *Value) types.ValueType {
	return types.TypeFloat
}

func (m *Module) EmitFieldAddress(b *BasicBlock, label string, entity, field *Value) (*Value, error) {
	if b.IsTerminated() {
		return nil, ErrBlockAlreadyTerminated
	}
	dest := m.newValue(label, types.TypePointer, false)
	b.append(&FieldAddress{Dest: dest, Entity: entity, Field: field})
	return dest, nil
}

func (m *Module) EmitLoadFromEntity(b *BasicBlock, label string, entity, field *Value, vtype types.ValueType) (*Value, error) {
	if b.IsTerminated() {
		return nil, ErrBlockAlreadyTerminated
	}
	dest := m.newValue(label, vtype, false)
	b.append(&LoadFromEntity{Dest: dest, Entity: entity, Field: field})
	return dest, nil
}

func (m *Module) CreatePhi(b *BasicBlock, label string, vtype types.ValueType) (*Phi, error) {
	if len(b.Instructions) != 0 {
		// A phi must be the first instruction of its block.
		return nil, ErrBlockAlreadyTerminated
	}
	dest := m.newValue(label, vtype, false)
	phi := &Phi{Dest: dest}
	b.append(phi)
	return phi, nil
}

func (m *Module) AddIncoming(phi *Phi, block *BasicBlock, val *Value) error {
	if val.Type != phi.Dest.Type {
		return ErrPhiTypeMismatch
	}
	phi.AddIncoming(block, val)
	return nil
}

func (m *Module) ExtractVectorComponent(base *Value, component int) (*Value, error) {
	if component < 0 || component > 2 {
		return nil, ErrInvalidVectorComponent
	}
	return m.newValue("", types.TypeFloat, false), nil
}

func (m *Module) SetFloatConstant(v *Value, f float64) {
	v.isConst = true
	v.constVal = f
}

func (m *Module) SetVectorConstant(v *Value, vec [3]float64) {
	v.isConst = true
	v.constVal = vec
}

func (m *Module) SetStringConstant(v *Value, s string) {
	v.isConst = true
	v.constVal = s
}

func (m *Module) DeleteValue(v *Value) {}

func (m *Module) DeleteBlock(fn *Function, b *BasicBlock) error {
	for i, blk := range fn.Blocks {
		if blk == b {
			return fn.RemoveBlockAt(i)
		}
	}
	return ErrBlockIndexOutOfRange
}
