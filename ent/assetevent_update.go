// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clulus/clulus/ent/assetevent"
	"github.com/clulus/clulus/ent/predicate"
)

// AssetEventUpdate is the builder for updating AssetEvent entities.
type AssetEventUpdate struct {
	config
	hooks    []Hook
	mutation *AssetEventMutation
}

// Where appends a list predicates to the AssetEventUpdate builder.
func (_u *AssetEventUpdate) Where(ps ...predicate.AssetEvent) *AssetEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AssetEventUpdate) SetRunID(v string) *AssetEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableRunID(v *string) *AssetEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssetEventUpdate) SetSessionID(v int64) *AssetEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableSessionID(v *int64) *AssetEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *AssetEventUpdate) AddSessionID(v int64) *AssetEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssetEventUpdate) SetKind(v string) *AssetEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableKind(v *string) *AssetEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *AssetEventUpdate) SetSourceText(v string) *AssetEventUpdate {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableSourceText(v *string) *AssetEventUpdate {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AssetEventUpdate) SetSuccess(v bool) *AssetEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableSuccess(v *bool) *AssetEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AssetEventUpdate) SetSizeBytes(v int) *AssetEventUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableSizeBytes(v *int) *AssetEventUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AssetEventUpdate) AddSizeBytes(v int) *AssetEventUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AssetEventUpdate) SetMimeType(v string) *AssetEventUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableMimeType(v *string) *AssetEventUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AssetEventUpdate) SetErrorMessage(v string) *AssetEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AssetEventUpdate) SetNillableErrorMessage(v *string) *AssetEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AssetEventMutation object of the builder.
func (_u *AssetEventUpdate) Mutation() *AssetEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssetEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssetEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetEventUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := assetevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceText(); ok {
		if err := assetevent.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.source_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AssetEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assetevent.Table, assetevent.Columns, sqlgraph.NewFieldSpec(assetevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(assetevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assetevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(assetevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assetevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(assetevent.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(assetevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(assetevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(assetevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(assetevent.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(assetevent.FieldErrorMessage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assetevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssetEventUpdateOne is the builder for updating a single AssetEvent entity.
type AssetEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssetEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *AssetEventUpdateOne) SetRunID(v string) *AssetEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableRunID(v *string) *AssetEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssetEventUpdateOne) SetSessionID(v int64) *AssetEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableSessionID(v *int64) *AssetEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *AssetEventUpdateOne) AddSessionID(v int64) *AssetEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetKind sets the "kind" field.
func (_u *AssetEventUpdateOne) SetKind(v string) *AssetEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableKind(v *string) *AssetEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSourceText sets the "source_text" field.
func (_u *AssetEventUpdateOne) SetSourceText(v string) *AssetEventUpdateOne {
	_u.mutation.SetSourceText(v)
	return _u
}

// SetNillableSourceText sets the "source_text" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableSourceText(v *string) *AssetEventUpdateOne {
	if v != nil {
		_u.SetSourceText(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AssetEventUpdateOne) SetSuccess(v bool) *AssetEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableSuccess(v *bool) *AssetEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *AssetEventUpdateOne) SetSizeBytes(v int) *AssetEventUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableSizeBytes(v *int) *AssetEventUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *AssetEventUpdateOne) AddSizeBytes(v int) *AssetEventUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *AssetEventUpdateOne) SetMimeType(v string) *AssetEventUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableMimeType(v *string) *AssetEventUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AssetEventUpdateOne) SetErrorMessage(v string) *AssetEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AssetEventUpdateOne) SetNillableErrorMessage(v *string) *AssetEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// Mutation returns the AssetEventMutation object of the builder.
func (_u *AssetEventUpdateOne) Mutation() *AssetEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssetEventUpdate builder.
func (_u *AssetEventUpdateOne) Where(ps ...predicate.AssetEvent) *AssetEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssetEventUpdateOne) Select(field string, fields ...string) *AssetEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssetEvent entity.
func (_u *AssetEventUpdateOne) Save(ctx context.Context) (*AssetEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssetEventUpdateOne) SaveX(ctx context.Context) *AssetEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssetEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssetEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssetEventUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := assetevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceText(); ok {
		if err := assetevent.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.source_text": %w`, err)}
		}
	}
	return nil
}

func (_u *AssetEventUpdateOne) sqlSave(ctx context.Context) (_node *AssetEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assetevent.Table, assetevent.Columns, sqlgraph.NewFieldSpec(assetevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssetEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assetevent.FieldID)
		for _, f := range fields {
			if !assetevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assetevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(assetevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assetevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(assetevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(assetevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceText(); ok {
		_spec.SetField(assetevent.FieldSourceText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(assetevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(assetevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(assetevent.FieldSizeBytes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(assetevent.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(assetevent.FieldErrorMessage, field.TypeString, value)
	}
	_node = &AssetEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assetevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
