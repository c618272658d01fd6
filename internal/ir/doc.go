// Package ir is the intermediate representation the lowering pass
// (internal/lower) builds: basic blocks, instructions and SSA-style phi
// nodes, grouped into functions and a top-level module.
//
// This package is the concrete implementation of the abstract IR
// builder interface the AST's lowering pass is specified against (see
// Builder). Nothing here inspects the AST; it only exposes the
// construction primitives a lowering pass needs (create-function,
// create-block, emit-binop, create-phi, and so on) and enforces the
// shape invariants a well-formed CFG must have — exactly one terminator
// per block, equal operand types on a phi's incoming edges.
package ir
