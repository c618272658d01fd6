package program

// Description is the top-level JSON shape a program file decodes into:
// an ordered list of global declarations, field declarations, and
// function definitions.
type Description struct {
	Globals   []GlobalDesc   `json:"globals"`
	Fields    []FieldDesc    `json:"fields"`
	Functions []FunctionDesc `json:"functions"`
}

// GlobalDesc declares one global Value, optionally constant.
type GlobalDesc struct {
	Name  string     `json:"name"`
	Type  string      `json:"type"`
	Const *ConstDesc `json:"const,omitempty"`
}

// FieldDesc declares one field descriptor: a named, typed offset into
// an entity.
type FieldDesc struct {
	Name    string `json:"name"`
	Payload string `json:"payload"`
}

// ConstDesc carries exactly one of its payload slots, selected by the
// declaring Value's type.
type ConstDesc struct {
	Float  *float64    `json:"float,omitempty"`
	Vector *[3]float64 `json:"vector,omitempty"`
	String *string     `json:"string,omitempty"`
}

// ParamDesc names one function parameter or block-local declaration.
type ParamDesc struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FunctionDesc declares a function: its signature (params + return
// type), an optional builtin index (non-zero means no body), and a
// body made of top-level blocks.
type FunctionDesc struct {
	Name    string      `json:"name"`
	Params  []ParamDesc `json:"params"`
	Return  string      `json:"return"`
	Builtin int         `json:"builtin,omitempty"`
	Body    []BlockDesc `json:"body,omitempty"`
}

// BlockDesc is one ast.Block: local declarations followed by an ordered
// statement list.
type BlockDesc struct {
	Locals []ParamDesc `json:"locals,omitempty"`
	Exprs  []ExprDesc  `json:"exprs"`
}

// ExprDesc is a discriminated union over every expression node kind the
// lowering pass understands, selected by Kind. Only the fields relevant
// to a given Kind are populated; see build.go's switch for the exact
// mapping.
type ExprDesc struct {
	Kind string `json:"kind"`

	Name string `json:"name,omitempty"` // "value": reference by name

	Float  *float64    `json:"float,omitempty"`  // "constfloat"
	Vector *[3]float64 `json:"vector,omitempty"` // "constvector"
	String *string     `json:"string,omitempty"` // "conststring"

	Op string `json:"op,omitempty"` // "binary", "unary", "store" opcode mnemonic

	Left        *ExprDesc `json:"left,omitempty"`
	Right       *ExprDesc `json:"right,omitempty"`
	Dest        *ExprDesc `json:"dest,omitempty"`
	Source      *ExprDesc `json:"source,omitempty"`
	Operand     *ExprDesc `json:"operand,omitempty"`

	Entity *ExprDesc `json:"entity,omitempty"`
	Field  *ExprDesc `json:"field,omitempty"`

	Owner      *ExprDesc `json:"owner,omitempty"`
	FieldIndex *uint     `json:"field_index,omitempty"`

	Callee *ExprDesc  `json:"callee,omitempty"`
	Args   []ExprDesc `json:"args,omitempty"`

	Locals []ParamDesc `json:"locals,omitempty"` // "block"
	Exprs  []ExprDesc  `json:"exprs,omitempty"`  // "block"

	Cond    *ExprDesc `json:"cond,omitempty"`
	OnTrue  *ExprDesc `json:"on_true,omitempty"`
	OnFalse *ExprDesc `json:"on_false,omitempty"`

	Init      *ExprDesc `json:"init,omitempty"`
	Precond   *ExprDesc `json:"precond,omitempty"`
	Postcond  *ExprDesc `json:"postcond,omitempty"`
	Increment *ExprDesc `json:"increment,omitempty"`
	Body      *ExprDesc `json:"body,omitempty"`
}
