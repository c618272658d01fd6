package lower

import (
	"fmt"

	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// LowerFunctionBody fills in the ir.Function created earlier by
// LowerGlobal: appends parameter types, lowers parameters as locals
// (skipped for builtins), creates the entry block, lowers every
// top-level Block in order, and finally checks that the current block
// ends in a terminator.
//
// The missing-return check mirrors the original exactly: it only
// inspects the block lowering left curblock pointing at, not every
// path through the function — a conservative, non-exhaustive check
// preserved deliberately rather than upgraded to real control-flow
// analysis.
func (lw *Lowerer) LowerFunctionBody(fn *ast.Function) error {
	if fn.IRFunc == nil {
		return fmt.Errorf("lower function %q: signature was not lowered", fn.Name())
	}

	sig := fn.Signature()
	for _, p := range sig.Params() {
		lw.Builder.AppendParameterType(fn.IRFunc, p.ResultType())
		if !fn.IsBuiltin() {
			if err := lw.LowerLocal(p, fn, true); err != nil {
				return fmt.Errorf("lower function %q: %w", fn.Name(), err)
			}
		}
	}

	if fn.IsBuiltin() {
		fn.IRFunc.BuiltinIndex = fn.BuiltinIndex()
		return nil
	}

	entry, err := lw.createBlock(fn, "entry")
	if err != nil {
		return fmt.Errorf("lower function %q: %w", fn.Name(), err)
	}
	fn.CurBlock = entry

	for _, b := range fn.Blocks() {
		if _, err := lw.lowerBlock(b, fn); err != nil {
			return fmt.Errorf("lower function %q: %w", fn.Name(), err)
		}
	}

	if !fn.CurBlock.IsTerminated() {
		retType := types.TypeVoid
		if sig.NextType() != nil {
			retType = sig.NextType().ResultType()
		}
		if retType == types.TypeVoid {
			return lw.Builder.EmitReturn(fn.CurBlock, nil)
		}
		lw.Log.Debug("function missing return", "name", fn.Name())
		return ErrMissingReturn
	}
	return nil
}
