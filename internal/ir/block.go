package ir

// BasicBlock is a maximal straight-line instruction sequence with a
// single entry and a single terminator. IsTerminated reports whether
// one of Jump/CondBranch/ReturnOp has already been appended; every
// emit-jump/emit-conditional-branch/emit-return call enforces that a
// block is terminated at most once.
type BasicBlock struct {
	Label        string
	Instructions []Instruction
	terminated   bool
	Predecessors []*BasicBlock
}

func newBasicBlock(label string) *BasicBlock {
	return &BasicBlock{Label: label}
}

// IsTerminated reports whether this block already ends with a
// terminator instruction.
func (b *BasicBlock) IsTerminated() bool { return b.terminated }

func (b *BasicBlock) append(instr Instruction) {
	b.Instructions = append(b.Instructions, instr)
}

func (b *BasicBlock) addPredecessor(p *BasicBlock) {
	b.Predecessors = append(b.Predecessors, p)
}

// FirstPhi returns the block's first instruction if it is a Phi, else
// nil — used by tests asserting the merge-block shape of a lowered
// Ternary.
func (b *BasicBlock) FirstPhi() *Phi {
	if len(b.Instructions) == 0 {
		return nil
	}
	if phi, ok := b.Instructions[0].(*Phi); ok {
		return phi
	}
	return nil
}
