// Package lower implements the traversal that converts pkg/ast's tree
// into internal/ir's basic-block IR. It is organized as one routine per
// node kind, all with the same shape described in spec §4.G: given a
// node, the enclosing Function (carrying the current IR block and
// break/continue targets) and whether the caller wants an lvalue or an
// rvalue, produce an IR value or fail.
//
// The traversal is an ordinary recursive descent with no suspension
// points; a failure anywhere unwinds immediately and is surfaced as an
// error, leaving whatever IR was already emitted for the driver to
// discard.
package lower
