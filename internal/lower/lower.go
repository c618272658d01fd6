package lower

import (
	"fmt"
	"log/slog"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Lowerer drives the AST-to-IR traversal against a single ir.Builder.
// It holds no per-traversal state of its own — all of that (current
// block, break/continue targets, label counter) lives on the
// ast.Function being lowered, exactly as spec §3 describes.
type Lowerer struct {
	Builder ir.Builder
	Limits  ast.Limits
	Log     *slog.Logger
}

// New returns a Lowerer with default limits and slog.Default() as its
// logger. Callers typically override Log via internal/logging.
func New(builder ir.Builder) *Lowerer {
	return &Lowerer{Builder: builder, Limits: ast.DefaultLimits(), Log: slog.Default()}
}

// lowerExpr is the single dispatch point for component G: one routine
// per node kind, selected by an ordinary Go type switch over the
// concrete node type (the idiomatic replacement for the source's
// per-node codegen function pointer).
func (lw *Lowerer) lowerExpr(e ast.Expr, fn *ast.Function, wantLValue bool) (*ir.Value, error) {
	switch n := e.(type) {
	case *ast.Value:
		return lw.lowerValueUse(n)
	case *ast.Binary:
		return lw.lowerBinary(n, fn)
	case *ast.Unary:
		return lw.lowerUnary(n, fn)
	case *ast.Store:
		return lw.lowerStore(n, fn, wantLValue)
	case *ast.Return:
		return lw.lowerReturn(n, fn)
	case *ast.EntField:
		return lw.lowerEntField(n, fn, wantLValue)
	case *ast.Member:
		return lw.lowerMember(n, fn)
	case *ast.Call:
		return lw.lowerCall(n, fn)
	case *ast.Block:
		return lw.lowerBlock(n, fn)
	case *ast.IfThen:
		return lw.lowerIfThen(n, fn)
	case *ast.Ternary:
		return lw.lowerTernary(n, fn)
	case *ast.Loop:
		return lw.lowerLoop(n, fn)
	default:
		return nil, fmt.Errorf("lower: unsupported node kind %T", e)
	}
}

// createBlock wraps Builder.CreateBlock with Limits.MaxBlockCount
// enforcement. Every block creation site in the lowering pass goes
// through here so the limit is checked uniformly instead of at a
// handful of call sites that happen to remember to.
func (lw *Lowerer) createBlock(fn *ast.Function, label string) (*ir.BasicBlock, error) {
	fn.BlockCount++
	if fn.BlockCount > lw.Limits.MaxBlockCount {
		return nil, ErrTooManyBlocks
	}
	return lw.Builder.CreateBlock(fn.IRFunc, label), nil
}

// addIncoming wraps Builder.AddIncoming with Limits.MaxPhiIncoming
// enforcement, checked after the edge is recorded: the edge that pushes
// the count past the bound is already on the phi when the error returns.
func (lw *Lowerer) addIncoming(phi *ir.Phi, block *ir.BasicBlock, val *ir.Value) error {
	if err := lw.Builder.AddIncoming(phi, block, val); err != nil {
		return err
	}
	if len(phi.Incoming) > lw.Limits.MaxPhiIncoming {
		return ErrTooManyPhiIncoming
	}
	return nil
}

// lowerValueUse handles a Value read in an expression position. The
// Value must already have been lowered (globally or locally); reading
// one that hasn't is a program bug, logged at debug level and reported
// as failure rather than panicking, per spec §7.
func (lw *Lowerer) lowerValueUse(v *ast.Value) (*ir.Value, error) {
	if v.IRValue == nil {
		lw.Log.Debug("value used before definition", slog.String("name", v.Name()))
		return nil, ErrUseBeforeDefinition
	}
	return v.IRValue, nil
}

// lowerBinary lowers both operands as rvalues (the lvalue flag is
// ignored for binary operators) and emits one instruction.
func (lw *Lowerer) lowerBinary(n *ast.Binary, fn *ast.Function) (*ir.Value, error) {
	left, err := lw.lowerExpr(n.Left, fn, false)
	if err != nil {
		return nil, err
	}
	right, err := lw.lowerExpr(n.Right, fn, false)
	if err != nil {
		return nil, err
	}
	return lw.Builder.EmitBinOp(fn.CurBlock, fn.Label("bin"), n.Op, left, right)
}

// lowerUnary lowers the operand as an rvalue and emits one instruction.
func (lw *Lowerer) lowerUnary(n *ast.Unary, fn *ast.Function) (*ir.Value, error) {
	operand, err := lw.lowerExpr(n.Operand, fn, false)
	if err != nil {
		return nil, err
	}
	return lw.Builder.EmitUnary(fn.CurBlock, fn.Label("unary"), n.Op, operand)
}

// lowerStore lowers destination as an lvalue and source as an rvalue,
// emits the declared store opcode, and returns destination when the
// caller wants an lvalue, else source.
func (lw *Lowerer) lowerStore(n *ast.Store, fn *ast.Function, wantLValue bool) (*ir.Value, error) {
	left, err := lw.lowerExpr(n.Dest, fn, true)
	if err != nil {
		return nil, err
	}
	right, err := lw.lowerExpr(n.Source, fn, false)
	if err != nil {
		return nil, err
	}
	if err := lw.Builder.EmitStore(fn.CurBlock, n.Op, left, right); err != nil {
		return nil, err
	}
	if wantLValue {
		return left, nil
	}
	return right, nil
}

// lowerReturn lowers the operand (if any) as an rvalue and emits a
// return terminator on the current block.
func (lw *Lowerer) lowerReturn(n *ast.Return, fn *ast.Function) (*ir.Value, error) {
	var operand *ir.Value
	if n.Operand != nil {
		v, err := lw.lowerExpr(n.Operand, fn, false)
		if err != nil {
			return nil, err
		}
		operand = v
	}
	if err := lw.Builder.EmitReturn(fn.CurBlock, operand); err != nil {
		return nil, err
	}
	return operand, nil
}

// lowerEntField lowers entity and field as rvalues; if the caller wants
// an lvalue it emits a field-address instruction, else a
// load-from-entity using the declared result type.
func (lw *Lowerer) lowerEntField(n *ast.EntField, fn *ast.Function, wantLValue bool) (*ir.Value, error) {
	entity, err := lw.lowerExpr(n.Entity, fn, false)
	if err != nil {
		return nil, err
	}
	field, err := lw.lowerExpr(n.Field, fn, false)
	if err != nil {
		return nil, err
	}
	if wantLValue {
		return lw.Builder.EmitFieldAddress(fn.CurBlock, fn.Label("efa"), entity, field)
	}
	return lw.Builder.EmitLoadFromEntity(fn.CurBlock, fn.Label("efv"), entity, field, n.ResultType())
}

// lowerMember lowers the owner as an lvalue, verifies its IR type is
// vector or field-of-vector, and synthesizes a vector-component value.
// No instruction is emitted.
func (lw *Lowerer) lowerMember(n *ast.Member, fn *ast.Function) (*ir.Value, error) {
	owner, err := lw.lowerExpr(n.Owner, fn, true)
	if err != nil {
		return nil, err
	}
	isVector := owner.Type == types.TypeVector
	isFieldOfVector := owner.Type == types.TypeField &&
		n.Owner.NextType() != nil && n.Owner.NextType().ResultType() == types.TypeVector
	if !isVector && !isFieldOfVector {
		return nil, ErrMemberInvalidOwnerType
	}
	return lw.Builder.ExtractVectorComponent(owner, int(n.Field))
}

// lowerCall lowers the callee as an rvalue, then each argument in
// order, and emits a call instruction.
func (lw *Lowerer) lowerCall(n *ast.Call, fn *ast.Function) (*ir.Value, error) {
	callee, err := lw.lowerExpr(n.Callee, fn, false)
	if err != nil {
		return nil, err
	}
	args := make([]*ir.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := lw.lowerExpr(a, fn, false)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	out, err := lw.Builder.EmitCall(fn.CurBlock, fn.Label("call"), callee, args)
	if err != nil {
		return nil, err
	}
	out.Type = n.ResultType()
	return out, nil
}
