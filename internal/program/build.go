package program

import (
	"fmt"

	"github.com/wbumiller/gmqcc/pkg/ast"
	"github.com/wbumiller/gmqcc/pkg/types"
)

// Program is the built tree: every declared global, field and function,
// in declaration order, ready for internal/lower to walk.
type Program struct {
	Globals   []*ast.Value
	Fields    []*ast.Value
	Functions []*ast.Function
}

// builder holds the symbol table accumulated while walking a
// Description. Globals and fields share one namespace (as in the
// source language); each function's locals/params form a second tier
// that shadows it for the duration of that function's body.
type builder struct {
	ctx     ast.Context
	globals map[string]*ast.Value
	locals  map[string]*ast.Value
	block   *ast.Block // innermost block being built; literal constants become its locals
}

// Build constructs a Program from a decoded Description.
func Build(file string, desc *Description) (*Program, error) {
	b := &builder{ctx: ast.Context{File: file}, globals: map[string]*ast.Value{}}

	prog := &Program{}

	for _, g := range desc.Globals {
		v, err := b.buildGlobal(g)
		if err != nil {
			return nil, fmt.Errorf("program: global %q: %w", g.Name, err)
		}
		prog.Globals = append(prog.Globals, v)
	}

	for _, f := range desc.Fields {
		v, err := b.buildField(f)
		if err != nil {
			return nil, fmt.Errorf("program: field %q: %w", f.Name, err)
		}
		prog.Fields = append(prog.Fields, v)
	}

	// Function signature Values are registered before any body is built,
	// so functions may call each other regardless of declaration order.
	funcs := make([]*ast.Function, len(desc.Functions))
	for i, fd := range desc.Functions {
		fn, err := b.declareFunction(fd)
		if err != nil {
			return nil, fmt.Errorf("program: function %q: %w", fd.Name, err)
		}
		funcs[i] = fn
	}
	for i, fd := range desc.Functions {
		if err := b.fillFunctionBody(funcs[i], fd); err != nil {
			return nil, fmt.Errorf("program: function %q: %w", fd.Name, err)
		}
		prog.Functions = append(prog.Functions, funcs[i])
	}

	return prog, nil
}

func parseType(s string) (types.ValueType, error) {
	switch s {
	case "", "void":
		return types.TypeVoid, nil
	case "float":
		return types.TypeFloat, nil
	case "vector":
		return types.TypeVector, nil
	case "string":
		return types.TypeString, nil
	case "entity":
		return types.TypeEntity, nil
	case "field":
		return types.TypeField, nil
	case "function":
		return types.TypeFunction, nil
	case "pointer":
		return types.TypePointer, nil
	default:
		return types.TypeVoid, fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

func (b *builder) buildGlobal(g GlobalDesc) (*ast.Value, error) {
	if _, exists := b.globals[g.Name]; exists {
		return nil, ErrDuplicateSymbol
	}
	vtype, err := parseType(g.Type)
	if err != nil {
		return nil, err
	}
	v := ast.NewValue(b.ctx, g.Name, vtype)
	if g.Const != nil {
		if err := applyConst(v, vtype, g.Const); err != nil {
			return nil, err
		}
	}
	b.globals[g.Name] = v
	return v, nil
}

func (b *builder) buildField(f FieldDesc) (*ast.Value, error) {
	if _, exists := b.globals[f.Name]; exists {
		return nil, ErrDuplicateSymbol
	}
	payload, err := parseType(f.Payload)
	if err != nil {
		return nil, err
	}
	v := ast.NewValue(b.ctx, f.Name, types.TypeField)
	v.SetNextType(ast.NewValue(b.ctx, "", payload))
	b.globals[f.Name] = v
	return v, nil
}

func applyConst(v *ast.Value, vtype types.ValueType, c *ConstDesc) error {
	switch vtype {
	case types.TypeFloat:
		if c.Float == nil {
			return ErrMissingConstant
		}
		v.SetConstFloat(*c.Float)
	case types.TypeVector:
		if c.Vector == nil {
			return ErrMissingConstant
		}
		v.SetConstVector(*c.Vector)
	case types.TypeString:
		if c.String == nil {
			return ErrMissingConstant
		}
		v.SetConstString(*c.String)
	default:
		return ErrMissingConstant
	}
	return nil
}

func (b *builder) declareFunction(fd FunctionDesc) (*ast.Function, error) {
	if _, exists := b.globals[fd.Name]; exists {
		return nil, ErrDuplicateSymbol
	}
	retType, err := parseType(fd.Return)
	if err != nil {
		return nil, err
	}

	sig := ast.NewValue(b.ctx, fd.Name, types.TypeFunction)
	sig.SetNextType(ast.NewValue(b.ctx, "", retType))
	for _, p := range fd.Params {
		ptype, err := parseType(p.Type)
		if err != nil {
			return nil, err
		}
		sig.ParamsAdd(ast.NewValue(b.ctx, p.Name, ptype))
	}

	fn, err := ast.NewFunction(b.ctx, fd.Name, sig)
	if err != nil {
		return nil, err
	}
	if fd.Builtin != 0 {
		fn.SetBuiltin(fd.Builtin)
	}
	b.globals[fd.Name] = sig
	return fn, nil
}

func (b *builder) fillFunctionBody(fn *ast.Function, fd FunctionDesc) error {
	if fd.Builtin != 0 {
		return nil
	}
	b.locals = map[string]*ast.Value{}
	for _, p := range fn.Signature().Params() {
		b.locals[p.Name()] = p
	}
	for _, bd := range fd.Body {
		blk, err := b.buildBlock(bd)
		if err != nil {
			return err
		}
		fn.AddBlock(blk)
	}
	b.locals = nil
	return nil
}

func (b *builder) lookup(name string) (*ast.Value, error) {
	if b.locals != nil {
		if v, ok := b.locals[name]; ok {
			return v, nil
		}
	}
	if v, ok := b.globals[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUndefinedSymbol, name)
}

func (b *builder) buildBlock(bd BlockDesc) (*ast.Block, error) {
	blk := ast.NewBlock(b.ctx)
	outer := b.block
	b.block = blk
	defer func() { b.block = outer }()
	for _, l := range bd.Locals {
		ltype, err := parseType(l.Type)
		if err != nil {
			return nil, err
		}
		v := ast.NewValue(b.ctx, l.Name, ltype)
		b.locals[l.Name] = v
		blk.AddLocal(v)
	}
	for _, ed := range bd.Exprs {
		e, err := b.buildExpr(ed)
		if err != nil {
			return nil, err
		}
		blk.AddExpr(e)
	}
	if len(bd.Exprs) > 0 {
		blk.SetType(blk.Exprs[len(blk.Exprs)-1])
	}
	return blk, nil
}

func (b *builder) buildExpr(ed ExprDesc) (ast.Expr, error) {
	switch ed.Kind {
	case "value":
		return b.lookup(ed.Name)

	case "constfloat":
		v := ast.NewValue(b.ctx, "", types.TypeFloat)
		if ed.Float == nil {
			return nil, ErrMissingConstant
		}
		v.SetConstFloat(*ed.Float)
		b.block.AddLocal(v)
		return v, nil

	case "constvector":
		v := ast.NewValue(b.ctx, "", types.TypeVector)
		if ed.Vector == nil {
			return nil, ErrMissingConstant
		}
		v.SetConstVector(*ed.Vector)
		b.block.AddLocal(v)
		return v, nil

	case "conststring":
		v := ast.NewValue(b.ctx, "", types.TypeString)
		if ed.String == nil {
			return nil, ErrMissingConstant
		}
		v.SetConstString(*ed.String)
		b.block.AddLocal(v)
		return v, nil

	case "binary":
		op, ok := opcodeNames[ed.Op]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOpcode, ed.Op)
		}
		left, err := b.buildExpr(*ed.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.buildExpr(*ed.Right)
		if err != nil {
			return nil, err
		}
		return ast.NewBinary(b.ctx, op, left, right), nil

	case "unary":
		op, ok := opcodeNames[ed.Op]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOpcode, ed.Op)
		}
		operand, err := b.buildExpr(*ed.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(b.ctx, op, operand), nil

	case "store":
		op, ok := opcodeNames[ed.Op]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOpcode, ed.Op)
		}
		dest, err := b.buildExpr(*ed.Dest)
		if err != nil {
			return nil, err
		}
		source, err := b.buildExpr(*ed.Source)
		if err != nil {
			return nil, err
		}
		return ast.NewStore(b.ctx, op, dest, source), nil

	case "return":
		if ed.Operand == nil {
			return ast.NewReturn(b.ctx, nil), nil
		}
		operand, err := b.buildExpr(*ed.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewReturn(b.ctx, operand), nil

	case "entfield":
		entity, err := b.buildExpr(*ed.Entity)
		if err != nil {
			return nil, err
		}
		field, err := b.buildExpr(*ed.Field)
		if err != nil {
			return nil, err
		}
		return ast.NewEntField(b.ctx, entity, field)

	case "member":
		owner, err := b.buildExpr(*ed.Owner)
		if err != nil {
			return nil, err
		}
		if ed.FieldIndex == nil {
			return nil, ErrMissingConstant
		}
		return ast.NewMember(b.ctx, owner, *ed.FieldIndex)

	case "call":
		callee, err := b.buildExpr(*ed.Callee)
		if err != nil {
			return nil, err
		}
		args := make([]ast.Expr, 0, len(ed.Args))
		for _, a := range ed.Args {
			arg, err := b.buildExpr(a)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		return ast.NewCall(b.ctx, callee, args), nil

	case "block":
		blk, err := b.buildBlock(BlockDesc{Locals: ed.Locals, Exprs: ed.Exprs})
		if err != nil {
			return nil, err
		}
		return blk, nil

	case "ifthen":
		cond, err := b.buildExpr(*ed.Cond)
		if err != nil {
			return nil, err
		}
		var onTrue, onFalse ast.Expr
		if ed.OnTrue != nil {
			if onTrue, err = b.buildExpr(*ed.OnTrue); err != nil {
				return nil, err
			}
		}
		if ed.OnFalse != nil {
			if onFalse, err = b.buildExpr(*ed.OnFalse); err != nil {
				return nil, err
			}
		}
		return ast.NewIfThen(b.ctx, cond, onTrue, onFalse)

	case "ternary":
		cond, err := b.buildExpr(*ed.Cond)
		if err != nil {
			return nil, err
		}
		onTrue, err := b.buildExpr(*ed.OnTrue)
		if err != nil {
			return nil, err
		}
		onFalse, err := b.buildExpr(*ed.OnFalse)
		if err != nil {
			return nil, err
		}
		return ast.NewTernary(b.ctx, cond, onTrue, onFalse)

	case "loop":
		var init, precond, postcond, increment, body ast.Expr
		var err error
		if ed.Init != nil {
			if init, err = b.buildExpr(*ed.Init); err != nil {
				return nil, err
			}
		}
		if ed.Precond != nil {
			if precond, err = b.buildExpr(*ed.Precond); err != nil {
				return nil, err
			}
		}
		if ed.Postcond != nil {
			if postcond, err = b.buildExpr(*ed.Postcond); err != nil {
				return nil, err
			}
		}
		if ed.Increment != nil {
			if increment, err = b.buildExpr(*ed.Increment); err != nil {
				return nil, err
			}
		}
		if ed.Body != nil {
			if body, err = b.buildExpr(*ed.Body); err != nil {
				return nil, err
			}
		}
		return ast.NewLoop(b.ctx, init, precond, postcond, increment, body), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExprKind, ed.Kind)
	}
}
