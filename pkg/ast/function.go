package ast

import (
	"fmt"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Function owns an ordered list of Block nodes forming a body, its
// signature (a Value of function type), and the traversal state used
// while the lowering pass walks it: the current IR block, the
// break/continue targets for the innermost loop, a monotonically
// increasing label counter, and the running loop-depth/block-count
// tallies the lowering pass checks against Limits as it walks.
//
// Function is not itself an Expr — it has no result type of its own;
// callers reach its type through Signature().
type Function struct {
	NodeBase

	name         string
	signature    *Value
	blocks       []*Block
	builtinIndex int
	labelCount   uint32

	// Lowering-only traversal state.
	IRFunc         *ir.Function
	CurBlock       *ir.BasicBlock
	BreakTarget    *ir.BasicBlock
	ContinueTarget *ir.BasicBlock
	LoopDepth      int // current Loop nesting depth, checked against Limits.MaxLoopDepth
	BlockCount     int // IR blocks created so far, checked against Limits.MaxBlockCount
}

// NewFunction validates that signature is a non-const Value of function
// type, then installs the bidirectional Function<->Value link and marks
// the signature const (it now denotes a fixed function, not a variable).
func NewFunction(ctx Context, name string, signature *Value) (*Function, error) {
	if signature == nil || signature.IsConst() || signature.ResultType() != types.TypeFunction {
		return nil, ErrFunctionBadSignature
	}
	f := &Function{NodeBase: newNodeBase(ctx, KindFunction), name: name, signature: signature}
	signature.SetConstFunc(f)
	return f, nil
}

func (f *Function) Name() string        { return f.name }
func (f *Function) Signature() *Value   { return f.signature }
func (f *Function) Blocks() []*Block    { return f.blocks }
func (f *Function) BuiltinIndex() int   { return f.builtinIndex }
func (f *Function) IsBuiltin() bool     { return f.builtinIndex != 0 }
func (f *Function) SetBuiltin(idx int)  { f.builtinIndex = idx }

// AddBlock appends a top-level Block to the function body, in the order
// the parser produced them.
func (f *Function) AddBlock(b *Block) { f.blocks = append(f.blocks, b) }

// Label returns a unique-per-function textual label built from prefix.
// Labels are diagnostic only, but every consumer must be able to rely on
// uniqueness within the function.
func (f *Function) Label(prefix string) string {
	f.labelCount++
	return fmt.Sprintf("%s%x", prefix, f.labelCount)
}

// Destroy clears the Function's side of the signature cross-link (so a
// later delete of the signature Value, if it outlives this call, sees a
// nil ConstFunc and doesn't try to re-enter here), then unrefs the
// signature — Values are always Keep, so this is always a no-op release
// rather than a delete: ownership of the signature is the symbol table's.
func (f *Function) Destroy() {
	f.markDestroyed()
	if f.signature != nil {
		f.signature.isConst = false
		f.signature.constFunc = nil
		Unref(f.signature)
		f.signature = nil
	}
	for _, b := range f.blocks {
		Delete(b)
	}
	f.blocks = nil
}
