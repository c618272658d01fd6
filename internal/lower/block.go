package lower

import (
	"fmt"

	"github.com/wbumiller/gmqcc/internal/ir"
	"github.com/wbumiller/gmqcc/pkg/ast"
)

// lowerBlock lowers every local declaration (as a non-parameter local),
// then every child expression in order as an rvalue. The comma-operator
// semantics fall out naturally: the returned value is whatever the last
// expression produced, or nil for an empty block.
func (lw *Lowerer) lowerBlock(n *ast.Block, fn *ast.Function) (*ir.Value, error) {
	for _, local := range n.Locals {
		if err := lw.LowerLocal(local, fn, false); err != nil {
			return nil, fmt.Errorf("lower block: %w", err)
		}
	}

	var out *ir.Value
	for _, e := range n.Exprs {
		v, err := lw.lowerExpr(e, fn, false)
		if err != nil {
			return nil, err
		}
		out = v
	}
	return out, nil
}
