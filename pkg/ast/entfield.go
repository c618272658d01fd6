package ast

import "github.com/wbumiller/gmqcc/pkg/types"

// EntField reads a field of an entity: `entity.field`. Its result type
// is the field's payload type, copied via CloneType so the EntField
// owns an independent type skeleton.
type EntField struct {
	NodeBase
	ExprBase

	Entity, Field Expr
}

// NewEntField validates that field has field type and a payload
// (next-type), then takes the payload's result type as its own and
// clones the payload's next-type (if any) into self's next-type.
func NewEntField(ctx Context, entity, field Expr) (*EntField, error) {
	if field.ResultType() != types.TypeField {
		return nil, ErrEntFieldNotField
	}
	payload := field.NextType()
	if payload == nil {
		return nil, ErrEntFieldNoPayload
	}
	ef := &EntField{NodeBase: newNodeBase(ctx, KindEntField), Entity: entity, Field: field}
	ef.SetResultType(payload.ResultType())
	ef.SetNextType(CloneType(ctx, payload.NextType()))
	return ef, nil
}

func (ef *EntField) Destroy() {
	ef.markDestroyed()
	Unref(ef.Entity)
	Unref(ef.Field)
	ef.destroyExprBase()
}
