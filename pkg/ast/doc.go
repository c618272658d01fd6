// Package ast provides an in-memory abstract syntax tree representation
// of a QuakeC-family program: expressions, statements and function
// bodies typed over float/vector/string/entity/field/function values.
//
// # Core Types
//
// Every concrete node embeds NodeBase (source context, kind tag, the
// "keep" ownership override) and, for expressions, ExprBase (result
// type, optional next-type, parameter list, codegen dispatch). Value
// holds named storage — variables, parameters, constants and function
// descriptors. The structural nodes (Binary, Unary, Store, Return,
// EntField, Member, Call, Block, IfThen, Ternary, Loop) model every
// expression and statement shape the language needs.
//
// Function owns an ordered list of Block nodes forming a body, plus the
// traversal state (current IR block, break/continue targets, label
// counter) used while lowering.
//
// # Ownership
//
// A parent node exclusively owns its children unless a child's Keep
// flag is set, in which case Unref is a no-op and the child survives the
// parent's destruction — this is how a parser's symbol table and the
// tree itself can both reference the same Value.
//
// # Lowering
//
// This package only builds and validates the tree. Traversing it into
// an IR is internal/lower's job; see that package's doc comment for the
// traversal contract.
package ast
