// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clulus/clulus/ent/assetevent"
)

// AssetEventCreate is the builder for creating a AssetEvent entity.
type AssetEventCreate struct {
	config
	mutation *AssetEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AssetEventCreate) SetSequence(v int64) *AssetEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AssetEventCreate) SetTimestamp(v time.Time) *AssetEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AssetEventCreate) SetNillableTimestamp(v *time.Time) *AssetEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *AssetEventCreate) SetRunID(v string) *AssetEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *AssetEventCreate) SetNillableRunID(v *string) *AssetEventCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AssetEventCreate) SetSessionID(v int64) *AssetEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *AssetEventCreate) SetKind(v string) *AssetEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSourceText sets the "source_text" field.
func (_c *AssetEventCreate) SetSourceText(v string) *AssetEventCreate {
	_c.mutation.SetSourceText(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *AssetEventCreate) SetSuccess(v bool) *AssetEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *AssetEventCreate) SetSizeBytes(v int) *AssetEventCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_c *AssetEventCreate) SetNillableSizeBytes(v *int) *AssetEventCreate {
	if v != nil {
		_c.SetSizeBytes(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *AssetEventCreate) SetMimeType(v string) *AssetEventCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *AssetEventCreate) SetNillableMimeType(v *string) *AssetEventCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AssetEventCreate) SetErrorMessage(v string) *AssetEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AssetEventCreate) SetNillableErrorMessage(v *string) *AssetEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the AssetEventMutation object of the builder.
func (_c *AssetEventCreate) Mutation() *AssetEventMutation {
	return _c.mutation
}

// Save creates the AssetEvent in the database.
func (_c *AssetEventCreate) Save(ctx context.Context) (*AssetEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssetEventCreate) SaveX(ctx context.Context) *AssetEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssetEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := assetevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.RunID(); !ok {
		v := assetevent.DefaultRunID
		_c.mutation.SetRunID(v)
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		v := assetevent.DefaultSizeBytes
		_c.mutation.SetSizeBytes(v)
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		v := assetevent.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := assetevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssetEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AssetEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AssetEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AssetEvent.run_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AssetEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "AssetEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := assetevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceText(); !ok {
		return &ValidationError{Name: "source_text", err: errors.New(`ent: missing required field "AssetEvent.source_text"`)}
	}
	if v, ok := _c.mutation.SourceText(); ok {
		if err := assetevent.SourceTextValidator(v); err != nil {
			return &ValidationError{Name: "source_text", err: fmt.Errorf(`ent: validator failed for field "AssetEvent.source_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "AssetEvent.success"`)}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "AssetEvent.size_bytes"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "AssetEvent.mime_type"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "AssetEvent.error_message"`)}
	}
	return nil
}

func (_c *AssetEventCreate) sqlSave(ctx context.Context) (*AssetEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssetEventCreate) createSpec() (*AssetEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AssetEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assetevent.Table, sqlgraph.NewFieldSpec(assetevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(assetevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(assetevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(assetevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assetevent.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(assetevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.SourceText(); ok {
		_spec.SetField(assetevent.FieldSourceText, field.TypeString, value)
		_node.SourceText = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(assetevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(assetevent.FieldSizeBytes, field.TypeInt, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(assetevent.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(assetevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// AssetEventCreateBulk is the builder for creating many AssetEvent entities in bulk.
type AssetEventCreateBulk struct {
	config
	err      error
	builders []*AssetEventCreate
}

// Save creates the AssetEvent entities in the database.
func (_c *AssetEventCreateBulk) Save(ctx context.Context) ([]*AssetEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssetEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssetEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssetEventCreateBulk) SaveX(ctx context.Context) []*AssetEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssetEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssetEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
