package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// Member is a vector component access: `owner.field` where field in
// {0,1,2} selects x/y/z. The owner may be a vector (result: float) or a
// field-of-vector (result: field-of-float).
type Member struct {
	NodeBase
	ExprBase

	Owner Expr
	Field uint
}

// NewMember validates field < 3 and that owner is a vector or a
// field-of-vector before deriving the result type.
func NewMember(ctx Context, owner Expr, field uint) (*Member, error) {
	if field >= 3 {
		return nil, ErrMemberIndexOutOfRange
	}
	isVector := owner.ResultType() == types.TypeVector
	isFieldOfVector := owner.ResultType() == types.TypeField &&
		owner.NextType() != nil && owner.NextType().ResultType() == types.TypeVector
	if !isVector && !isFieldOfVector {
		return nil, ErrMemberInvalidOwner
	}

	m := &Member{NodeBase: newNodeBase(ctx, KindMember), Owner: owner, Field: field}
	if isVector {
		m.SetResultType(types.TypeFloat)
	} else {
		m.SetResultType(types.TypeField)
		m.SetNextType(shallowType(ctx, types.TypeFloat))
	}
	return m, nil
}

func (m *Member) Destroy() {
	m.markDestroyed()
	Unref(m.Owner)
	m.destroyExprBase()
}
