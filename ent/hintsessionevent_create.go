// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clulus/clulus/ent/hintsessionevent"
)

// HintSessionEventCreate is the builder for creating a HintSessionEvent entity.
type HintSessionEventCreate struct {
	config
	mutation *HintSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *HintSessionEventCreate) SetSequence(v int64) *HintSessionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HintSessionEventCreate) SetTimestamp(v time.Time) *HintSessionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableTimestamp(v *time.Time) *HintSessionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *HintSessionEventCreate) SetRunID(v string) *HintSessionEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableRunID(v *string) *HintSessionEventCreate {
	if v != nil {
		_c.SetRunID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *HintSessionEventCreate) SetSessionID(v int64) *HintSessionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTriggerReason sets the "trigger_reason" field.
func (_c *HintSessionEventCreate) SetTriggerReason(v string) *HintSessionEventCreate {
	_c.mutation.SetTriggerReason(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *HintSessionEventCreate) SetOutcome(v string) *HintSessionEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetHintText sets the "hint_text" field.
func (_c *HintSessionEventCreate) SetHintText(v string) *HintSessionEventCreate {
	_c.mutation.SetHintText(v)
	return _c
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableHintText(v *string) *HintSessionEventCreate {
	if v != nil {
		_c.SetHintText(*v)
	}
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *HintSessionEventCreate) SetQuestionText(v string) *HintSessionEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableQuestionText(v *string) *HintSessionEventCreate {
	if v != nil {
		_c.SetQuestionText(*v)
	}
	return _c
}

// SetHadNarration sets the "had_narration" field.
func (_c *HintSessionEventCreate) SetHadNarration(v bool) *HintSessionEventCreate {
	_c.mutation.SetHadNarration(v)
	return _c
}

// SetNillableHadNarration sets the "had_narration" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableHadNarration(v *bool) *HintSessionEventCreate {
	if v != nil {
		_c.SetHadNarration(*v)
	}
	return _c
}

// SetHadImage sets the "had_image" field.
func (_c *HintSessionEventCreate) SetHadImage(v bool) *HintSessionEventCreate {
	_c.mutation.SetHadImage(v)
	return _c
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableHadImage(v *bool) *HintSessionEventCreate {
	if v != nil {
		_c.SetHadImage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *HintSessionEventCreate) SetErrorMessage(v string) *HintSessionEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableErrorMessage(v *string) *HintSessionEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *HintSessionEventCreate) SetDurationMs(v int64) *HintSessionEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *HintSessionEventCreate) SetNillableDurationMs(v *int64) *HintSessionEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the HintSessionEventMutation object of the builder.
func (_c *HintSessionEventCreate) Mutation() *HintSessionEventMutation {
	return _c.mutation
}

// Save creates the HintSessionEvent in the database.
func (_c *HintSessionEventCreate) Save(ctx context.Context) (*HintSessionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HintSessionEventCreate) SaveX(ctx context.Context) *HintSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintSessionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintSessionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HintSessionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := hintsessionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.RunID(); !ok {
		v := hintsessionevent.DefaultRunID
		_c.mutation.SetRunID(v)
	}
	if _, ok := _c.mutation.HintText(); !ok {
		v := hintsessionevent.DefaultHintText
		_c.mutation.SetHintText(v)
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		v := hintsessionevent.DefaultQuestionText
		_c.mutation.SetQuestionText(v)
	}
	if _, ok := _c.mutation.HadNarration(); !ok {
		v := hintsessionevent.DefaultHadNarration
		_c.mutation.SetHadNarration(v)
	}
	if _, ok := _c.mutation.HadImage(); !ok {
		v := hintsessionevent.DefaultHadImage
		_c.mutation.SetHadImage(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := hintsessionevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := hintsessionevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HintSessionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HintSessionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HintSessionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "HintSessionEvent.run_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "HintSessionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.TriggerReason(); !ok {
		return &ValidationError{Name: "trigger_reason", err: errors.New(`ent: missing required field "HintSessionEvent.trigger_reason"`)}
	}
	if v, ok := _c.mutation.TriggerReason(); ok {
		if err := hintsessionevent.TriggerReasonValidator(v); err != nil {
			return &ValidationError{Name: "trigger_reason", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.trigger_reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "HintSessionEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := hintsessionevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HintText(); !ok {
		return &ValidationError{Name: "hint_text", err: errors.New(`ent: missing required field "HintSessionEvent.hint_text"`)}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "HintSessionEvent.question_text"`)}
	}
	if _, ok := _c.mutation.HadNarration(); !ok {
		return &ValidationError{Name: "had_narration", err: errors.New(`ent: missing required field "HintSessionEvent.had_narration"`)}
	}
	if _, ok := _c.mutation.HadImage(); !ok {
		return &ValidationError{Name: "had_image", err: errors.New(`ent: missing required field "HintSessionEvent.had_image"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "HintSessionEvent.error_message"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "HintSessionEvent.duration_ms"`)}
	}
	return nil
}

func (_c *HintSessionEventCreate) sqlSave(ctx context.Context) (*HintSessionEvent, error) {
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

func (_c *HintSessionEventCreate) createSpec() (*HintSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HintSessionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hintsessionevent.Table, sqlgraph.NewFieldSpec(hintsessionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(hintsessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(hintsessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(hintsessionevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(hintsessionevent.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.TriggerReason(); ok {
		_spec.SetField(hintsessionevent.FieldTriggerReason, field.TypeString, value)
		_node.TriggerReason = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(hintsessionevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.HintText(); ok {
		_spec.SetField(hintsessionevent.FieldHintText, field.TypeString, value)
		_node.HintText = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(hintsessionevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.HadNarration(); ok {
		_spec.SetField(hintsessionevent.FieldHadNarration, field.TypeBool, value)
		_node.HadNarration = value
	}
	if value, ok := _c.mutation.HadImage(); ok {
		_spec.SetField(hintsessionevent.FieldHadImage, field.TypeBool, value)
		_node.HadImage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(hintsessionevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(hintsessionevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// HintSessionEventCreateBulk is the builder for creating many HintSessionEvent entities in bulk.
type HintSessionEventCreateBulk struct {
	config
	err      error
	builders []*HintSessionEventCreate
}

// Save creates the HintSessionEvent entities in the database.
func (_c *HintSessionEventCreateBulk) Save(ctx context.Context) ([]*HintSessionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HintSessionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HintSessionEventMutation)
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
func (_c *HintSessionEventCreateBulk) SaveX(ctx context.Context) []*HintSessionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HintSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HintSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
