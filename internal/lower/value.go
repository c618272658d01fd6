package lower

import (
	"fmt"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// LowerGlobal installs v's IR back-link as a module-level definition.
// A const function Value creates the ir.Function shell (filled in later
// by LowerFunctionBody); a field-typed Value creates an IR field value
// via Builder.CreateField; const
// field pointers are rejected rather than silently ignored. Everything
// else creates a plain global and, if const, sets its payload.
func (lw *Lowerer) LowerGlobal(v *ast.Value) error {
	if v.IsConst() && v.ResultType() == types.TypeFunction {
		fn := v.ConstFunc()
		retType := types.TypeVoid
		if v.NextType() != nil {
			retType = v.NextType().ResultType()
		}
		irFunc, err := lw.Builder.CreateFunction(v.Name(), retType)
		if err != nil {
			return fmt.Errorf("lower global %q: %w", v.Name(), err)
		}
		if fn != nil {
			fn.IRFunc = irFunc
		}
		v.IRValue = irFunc.Value
		return nil
	}

	if v.ResultType() == types.TypeField {
		payload := types.TypeVoid
		if v.NextType() != nil {
			payload = v.NextType().ResultType()
		}
		irVal, err := lw.Builder.CreateField(v.Name(), payload)
		if err != nil {
			return fmt.Errorf("lower global %q: %w", v.Name(), err)
		}
		if v.IsConst() {
			return ErrConstFieldPointer
		}
		v.IRValue = irVal
		return nil
	}

	irVal, err := lw.Builder.CreateGlobal(v.Name(), v.ResultType())
	if err != nil {
		return fmt.Errorf("lower global %q: %w", v.Name(), err)
	}
	if v.IsConst() {
		if err := lw.setConstant(irVal, v); err != nil {
			return err
		}
	}
	v.IRValue = irVal
	return nil
}

// LowerLocal installs v's IR back-link as a local (or parameter, when
// param is true) of fn.IRFunc. Local function values are rejected.
func (lw *Lowerer) LowerLocal(v *ast.Value, fn *ast.Function, param bool) error {
	if v.IsConst() && v.ResultType() == types.TypeFunction {
		return ErrLocalFunction
	}

	irVal, err := lw.Builder.CreateLocal(fn.IRFunc, v.Name(), v.ResultType(), param)
	if err != nil {
		return fmt.Errorf("lower local %q: %w", v.Name(), err)
	}
	if v.IsConst() {
		if err := lw.setConstant(irVal, v); err != nil {
			return err
		}
	}
	v.IRValue = irVal
	return nil
}

// setConstant copies v's constant payload onto irVal, matching
// ast_global_codegen/ast_local_codegen's identical switch over vtype.
func (lw *Lowerer) setConstant(irVal *ir.Value, v *ast.Value) error {
	switch v.ResultType() {
	case types.TypeFloat:
		lw.Builder.SetFloatConstant(irVal, v.ConstFloat())
	case types.TypeVector:
		lw.Builder.SetVectorConstant(irVal, v.ConstVector())
	case types.TypeString:
		lw.Builder.SetStringConstant(irVal, v.ConstString())
	default:
		return ErrUnsupportedConstType
	}
	return nil
}
