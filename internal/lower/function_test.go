package lower

import (
	"testing"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

func declaredFunction(t *testing.T, lw *Lowerer, name string, retType types.ValueType, paramType *types.ValueType) *ast.Function {
	t.Helper()
	sig := ast.NewValue(ast.Context{}, name, types.TypeFunction)
	if retType != types.TypeVoid {
		sig.SetNextType(ast.NewValue(ast.Context{}, "", retType))
	}
	if paramType != nil {
		sig.ParamsAdd(ast.NewValue(ast.Context{}, "p", *paramType))
	}
	fn, err := ast.NewFunction(ast.Context{}, name, sig)
	if err != nil {
		t.Fatalf("NewFunction failed: %v", err)
	}
	irFn, err := lw.Builder.CreateFunction(name, retType)
	if err != nil {
		t.Fatalf("CreateFunction failed: %v", err)
	}
	fn.IRFunc = irFn
	return fn
}

func TestLowerFunctionBodyAutoInsertsVoidReturn(t *testing.T) {
	lw := New(ir.NewModule())
	fn := declaredFunction(t, lw, "f", types.TypeVoid, nil)

	if err := lw.LowerFunctionBody(fn); err != nil {
		t.Fatalf("LowerFunctionBody failed: %v", err)
	}
	entry := fn.IRFunc.Blocks[0]
	if !entry.IsTerminated() {
		t.Error("a void function with an empty body should get an auto-inserted return")
	}
}

func TestLowerFunctionBodyMissingReturnFails(t *testing.T) {
	lw := New(ir.NewModule())
	retType := types.TypeFloat
	fn := declaredFunction(t, lw, "f", retType, nil)

	if err := lw.LowerFunctionBody(fn); err == nil {
		t.Error("a non-void function whose body never returns should fail")
	}
}

func TestLowerFunctionBodySkipsBuiltins(t *testing.T) {
	lw := New(ir.NewModule())
	fn := declaredFunction(t, lw, "bprint", types.TypeVoid, nil)
	fn.SetBuiltin(17)

	if err := lw.LowerFunctionBody(fn); err != nil {
		t.Fatalf("LowerFunctionBody failed for a builtin: %v", err)
	}
	if fn.IRFunc.BuiltinIndex != 17 {
		t.Errorf("BuiltinIndex = %d, want 17", fn.IRFunc.BuiltinIndex)
	}
	if len(fn.IRFunc.Blocks) != 0 {
		t.Error("a builtin function should get no blocks")
	}
}

func TestLowerFunctionBodyLowersParamsAsLocals(t *testing.T) {
	lw := New(ir.NewModule())
	paramType := types.TypeFloat
	fn := declaredFunction(t, lw, "f", types.TypeVoid, &paramType)

	if err := lw.LowerFunctionBody(fn); err != nil {
		t.Fatalf("LowerFunctionBody failed: %v", err)
	}
	param := fn.Signature().Params()[0]
	if param.IRValue == nil {
		t.Error("a non-builtin function's parameters should be lowered as locals")
	}
	if len(fn.IRFunc.Params) != 1 || fn.IRFunc.Params[0] != types.TypeFloat {
		t.Error("the IR function signature should record the parameter type")
	}
}
