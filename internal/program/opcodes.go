package program

import "github.com/wbumiller/gmqcc/internal/ir"

// opcodeNames maps the textual mnemonics a program description uses for
// "op" fields onto ir.Opcode, the reverse of ir.Opcode.String().
var opcodeNames = map[string]ir.Opcode{
	"add.f":  ir.OpAddF,
	"sub.f":  ir.OpSubF,
	"mul.f":  ir.OpMulF,
	"div.f":  ir.OpDivF,
	"add.v":  ir.OpAddV,
	"sub.v":  ir.OpSubV,
	"mul.vf": ir.OpMulVF,
	"mul.fv": ir.OpMulFV,
	"mul.v":  ir.OpMulV,
	"eq":     ir.OpEq,
	"ne":     ir.OpNe,
	"lt":     ir.OpLt,
	"le":     ir.OpLe,
	"gt":     ir.OpGt,
	"ge":     ir.OpGe,
	"and":    ir.OpAnd,
	"or":     ir.OpOr,
	"bitand": ir.OpBitAnd,
	"bitor":  ir.OpBitOr,
	"neg.f":  ir.OpNegF,
	"neg.v":  ir.OpNegV,
	"not":    ir.OpNot,
}
