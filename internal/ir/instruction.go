package ir

import "fmt"

// Instruction is one entry in a basic block. Grounded on the corpus's
// three-address-code IR sketches: every instruction knows the operand
// values it reads and, if any, the value it defines.
type Instruction interface {
	fmt.Stringer
	Operands() []*Value
	Result() *Value
}

// BinOp computes Dest = Left Op Right.
type BinOp struct {
	Op    Opcode
	Dest  *Value
	Left  *Value
	Right *Value
}

func (b *BinOp) String() string         { return fmt.Sprintf("%s = %s %s %s", b.Dest, b.Op, b.Left, b.Right) }
func (b *BinOp) Operands() []*Value     { return []*Value{b.Left, b.Right} }
func (b *BinOp) Result() *Value         { return b.Dest }

// UnOp computes Dest = Op Operand.
type UnOp struct {
	Op      Opcode
	Dest    *Value
	Operand *Value
}

func (u *UnOp) String() string     { return fmt.Sprintf("%s = %s %s", u.Dest, u.Op, u.Operand) }
func (u *UnOp) Operands() []*Value { return []*Value{u.Operand} }
func (u *UnOp) Result() *Value     { return u.Dest }

// StoreOp writes Source into Dest using the store opcode carried by the
// AST's Store node (plain assignment, or a compound store).
type StoreOp struct {
	Op     Opcode
	Dest   *Value
	Source *Value
}

func (s *StoreOp) String() string     { return fmt.Sprintf("store %s, %s, %s", s.Op, s.Dest, s.Source) }
func (s *StoreOp) Operands() []*Value { return []*Value{s.Dest, s.Source} }
func (s *StoreOp) Result() *Value     { return nil }

// Jump is an unconditional terminator.
type Jump struct {
	Target *BasicBlock
}

func (j *Jump) String() string     { return fmt.Sprintf("jump %s", j.Target.Label) }
func (j *Jump) Operands() []*Value { return nil }
func (j *Jump) Result() *Value     { return nil }

// CondBranch is a two-way conditional terminator.
type CondBranch struct {
	Cond  *Value
	True  *BasicBlock
	False *BasicBlock
}

func (c *CondBranch) String() string {
	return fmt.Sprintf("branch %s, %s, %s", c.Cond, c.True.Label, c.False.Label)
}
func (c *CondBranch) Operands() []*Value { return []*Value{c.Cond} }
func (c *CondBranch) Result() *Value     { return nil }

// ReturnOp is a terminator; Operand is nil for a void return.
type ReturnOp struct {
	Operand *Value
}

func (r *ReturnOp) String() string {
	if r.Operand == nil {
		return "return"
	}
	return fmt.Sprintf("return %s", r.Operand)
}
func (r *ReturnOp) Operands() []*Value {
	if r.Operand == nil {
		return nil
	}
	return []*Value{r.Operand}
}
func (r *ReturnOp) Result() *Value { return nil }

// CallOp represents a function call; Dest is nil for a void call.
type CallOp struct {
	Dest     *Value
	Callee   *Value
	Args     []*Value
}

func (c *CallOp) String() string {
	if c.Dest != nil {
		return fmt.Sprintf("%s = call %s%v", c.Dest, c.Callee, c.Args)
	}
	return fmt.Sprintf("call %s%v", c.Callee, c.Args)
}
func (c *CallOp) Operands() []*Value {
	ops := make([]*Value, 0, len(c.Args)+1)
	ops = append(ops, c.Callee)
	ops = append(ops, c.Args...)
	return ops
}
func (c *CallOp) Result() *Value { return c.Dest }

// FieldAddress computes the address of Entity's Field — used when an
// EntField node is read in lvalue position.
type FieldAddress struct {
	Dest   *Value
	Entity *Value
	Field  *Value
}

func (f *FieldAddress) String() string { return fmt.Sprintf("%s = fieldaddr %s, %s", f.Dest, f.Entity, f.Field) }
func (f *FieldAddress) Operands() []*Value { return []*Value{f.Entity, f.Field} }
func (f *FieldAddress) Result() *Value     { return f.Dest }

// LoadFromEntity loads Entity's Field value — used when an EntField
// node is read in rvalue position.
type LoadFromEntity struct {
	Dest   *Value
	Entity *Value
	Field  *Value
}

func (l *LoadFromEntity) String() string { return fmt.Sprintf("%s = load.ent %s, %s", l.Dest, l.Entity, l.Field) }
func (l *LoadFromEntity) Operands() []*Value { return []*Value{l.Entity, l.Field} }
func (l *LoadFromEntity) Result() *Value     { return l.Dest }

// ExtractVectorComponent synthesizes a scalar view of one lane of a
// vector (or field-of-vector) value — used by Member. No instruction is
// actually emitted for this in the original semantics (§4.G: "No
// instruction is emitted"); we keep the type to describe the resulting
// synthetic value's provenance for the printer, but lowering never
// appends one to a block.
type ExtractVectorComponent struct {
	Dest      *Value
	Base      *Value
	Component int
}

func (e *ExtractVectorComponent) String() string {
	return fmt.Sprintf("%s = %s.%d", e.Dest, e.Base, e.Component)
}
func (e *ExtractVectorComponent) Operands() []*Value { return []*Value{e.Base} }
func (e *ExtractVectorComponent) Result() *Value     { return e.Dest }

// PhiIncoming is one (value, predecessor) pair of a Phi.
type PhiIncoming struct {
	Value *Value
	Block *BasicBlock
}

// Phi selects a value based on which predecessor transferred control.
type Phi struct {
	Dest     *Value
	Incoming []PhiIncoming
}

func (p *Phi) String() string {
	return fmt.Sprintf("%s = phi%v", p.Dest, p.Incoming)
}
func (p *Phi) Operands() []*Value {
	ops := make([]*Value, len(p.Incoming))
	for i, in := range p.Incoming {
		ops[i] = in.Value
	}
	return ops
}
func (p *Phi) Result() *Value { return p.Dest }

// AddIncoming appends one (value, predecessor) pair to the phi.
func (p *Phi) AddIncoming(block *BasicBlock, val *Value) {
	p.Incoming = append(p.Incoming, PhiIncoming{Value: val, Block: block})
}
