package ast

import (
	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Value is named storage: a variable, parameter, constant or function
// descriptor. It owns its name and constant payload, and holds the
// back-link to the IR value created for it once it has been lowered
// (globally or locally).
type Value struct {
	NodeBase
	ExprBase

	name    string
	isConst bool

	constFloat  float64
	constVector [3]float64
	constString string
	constFunc   *Function // back-reference, valid when isConst && ResultType()==TypeFunction

	IRValue *ir.Value // installed by global/local lowering
}

// NewValue allocates a Value. Values are always shared — the parser may
// hold one in a symbol table while the tree also references it as a
// child — so Keep is set unconditionally, matching ast_value_new.
func NewValue(ctx Context, name string, vtype types.ValueType) *Value {
	v := &Value{NodeBase: newNodeBase(ctx, KindValue), name: name}
	v.SetKeep(true)
	v.SetResultType(vtype)
	return v
}

func (v *Value) Name() string { return v.name }

// SetName replaces the owned name.
func (v *Value) SetName(name string) { v.name = name }

func (v *Value) IsConst() bool { return v.isConst }

// SetConstFloat marks the value as a constant float and stores its payload.
func (v *Value) SetConstFloat(f float64) {
	v.isConst = true
	v.constFloat = f
}

func (v *Value) ConstFloat() float64 { return v.constFloat }

// SetConstVector marks the value as a constant vector.
func (v *Value) SetConstVector(vec [3]float64) {
	v.isConst = true
	v.constVector = vec
}

func (v *Value) ConstVector() [3]float64 { return v.constVector }

// SetConstString marks the value as a constant string.
func (v *Value) SetConstString(s string) {
	v.isConst = true
	v.constString = s
}

func (v *Value) ConstString() string { return v.constString }

// SetConstFunc installs the constant-function side of the bidirectional
// Function<->Value link. Called by NewFunction, never directly.
func (v *Value) SetConstFunc(f *Function) {
	v.isConst = true
	v.constFunc = f
}

func (v *Value) ConstFunc() *Function { return v.constFunc }

// ParamsAdd appends a parameter Value to this value's signature
// parameter list (only meaningful when ResultType()==TypeFunction).
func (v *Value) ParamsAdd(p *Value) { v.AddParam(p) }

// Destroy releases the owned constant payload, clears the Function
// cross-link if this is a constant-function Value, then releases the
// expression-base children (next-type, parameters).
func (v *Value) Destroy() {
	v.markDestroyed()
	if v.isConst && v.ResultType() == types.TypeFunction && v.constFunc != nil {
		// Unlink from the function node before either side is gone, so
		// the function's own Destroy (if it runs later) sees a nil
		// signature and doesn't try to re-clear this value.
		v.constFunc.signature = nil
		v.constFunc = nil
	}
	v.destroyExprBase()
}
