package lower

import (
	"testing"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

func TestLowerGlobalPlainConstant(t *testing.T) {
	lw := New(ir.NewModule())
	v := ast.NewValue(ast.Context{}, "PI", types.TypeFloat)
	v.SetConstFloat(3.5)

	if err := lw.LowerGlobal(v); err != nil {
		t.Fatalf("LowerGlobal failed: %v", err)
	}
	if v.IRValue == nil {
		t.Fatal("LowerGlobal should install an IR value")
	}
	if !v.IRValue.IsConst() {
		t.Error("a const Value should lower to a const ir.Value")
	}
	if got := v.IRValue.ConstValue().(float64); got != 3.5 {
		t.Errorf("constant payload = %v, want 3.5", got)
	}
}

func TestLowerGlobalConstFunctionInstallsIRFunc(t *testing.T) {
	lw := New(ir.NewModule())
	sig := ast.NewValue(ast.Context{}, "think", types.TypeFunction)
	fn, err := ast.NewFunction(ast.Context{}, "think", sig)
	if err != nil {
		t.Fatalf("NewFunction failed: %v", err)
	}
	_ = fn

	if err := lw.LowerGlobal(sig); err != nil {
		t.Fatalf("LowerGlobal failed: %v", err)
	}
	if fn.IRFunc == nil {
		t.Error("LowerGlobal of a const-function Value should install fn.IRFunc")
	}
	if sig.IRValue == nil {
		t.Error("LowerGlobal should also set IRValue on the signature")
	}
}

func TestLowerGlobalRejectsConstFieldPointer(t *testing.T) {
	lw := New(ir.NewModule())
	v := ast.NewValue(ast.Context{}, "damage", types.TypeField)
	v.SetConstFloat(1)

	if err := lw.LowerGlobal(v); err == nil {
		t.Error("a const field-typed global should be rejected")
	}
}

func TestLowerGlobalPlainFieldSucceeds(t *testing.T) {
	lw := New(ir.NewModule())
	v := ast.NewValue(ast.Context{}, "damage", types.TypeField)

	if err := lw.LowerGlobal(v); err != nil {
		t.Fatalf("LowerGlobal of a non-const field should succeed: %v", err)
	}
	if v.IRValue == nil {
		t.Fatal("LowerGlobal should install an IR value for a field")
	}
}

func TestLowerLocalRejectsFunctionValue(t *testing.T) {
	lw := New(ir.NewModule())
	sig := ast.NewValue(ast.Context{}, "think", types.TypeFunction)
	fn2, err := ast.NewFunction(ast.Context{}, "think", sig)
	if err != nil {
		t.Fatalf("NewFunction failed: %v", err)
	}

	irFn, err := lw.Builder.CreateFunction("holder", types.TypeVoid)
	if err != nil {
		t.Fatalf("CreateFunction failed: %v", err)
	}
	fn2.IRFunc = irFn

	if err := lw.LowerLocal(sig, fn2, false); err == nil {
		t.Error("lowering a local function value should be rejected")
	}
}

func TestLowerLocalConstVector(t *testing.T) {
	lw := New(ir.NewModule())
	irFn, err := lw.Builder.CreateFunction("f", types.TypeVoid)
	if err != nil {
		t.Fatalf("CreateFunction failed: %v", err)
	}
	sig := ast.NewValue(ast.Context{}, "f", types.TypeFunction)
	fn, err := ast.NewFunction(ast.Context{}, "f", sig)
	if err != nil {
		t.Fatalf("NewFunction failed: %v", err)
	}
	fn.IRFunc = irFn

	v := ast.NewValue(ast.Context{}, "origin", types.TypeVector)
	v.SetConstVector([3]float64{1, 2, 3})

	if err := lw.LowerLocal(v, fn, false); err != nil {
		t.Fatalf("LowerLocal failed: %v", err)
	}
	got := v.IRValue.ConstValue().([3]float64)
	if got != [3]float64{1, 2, 3} {
		t.Errorf("constant payload = %v, want {1 2 3}", got)
	}
}
