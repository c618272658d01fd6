// Package program reads a small JSON program description and builds it
// into a pkg/ast tree. It is explicitly not a QuakeC lexer/parser: the
// lexer/parser/console/bytecode-emitter boundary stays out of scope;
// this package exists purely so cmd/qccgen has something to hand the
// lowering pass without requiring a real front-end.
package program
