// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/clulus/clulus/ent/hintsessionevent"
	"github.com/clulus/clulus/ent/predicate"
)

// HintSessionEventUpdate is the builder for updating HintSessionEvent entities.
type HintSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *HintSessionEventMutation
}

// Where appends a list predicates to the HintSessionEventUpdate builder.
func (_u *HintSessionEventUpdate) Where(ps ...predicate.HintSessionEvent) *HintSessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *HintSessionEventUpdate) SetRunID(v string) *HintSessionEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableRunID(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HintSessionEventUpdate) SetSessionID(v int64) *HintSessionEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableSessionID(v *int64) *HintSessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *HintSessionEventUpdate) AddSessionID(v int64) *HintSessionEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTriggerReason sets the "trigger_reason" field.
func (_u *HintSessionEventUpdate) SetTriggerReason(v string) *HintSessionEventUpdate {
	_u.mutation.SetTriggerReason(v)
	return _u
}

// SetNillableTriggerReason sets the "trigger_reason" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableTriggerReason(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetTriggerReason(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *HintSessionEventUpdate) SetOutcome(v string) *HintSessionEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableOutcome(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintSessionEventUpdate) SetHintText(v string) *HintSessionEventUpdate {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableHintText(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *HintSessionEventUpdate) SetQuestionText(v string) *HintSessionEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableQuestionText(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetHadNarration sets the "had_narration" field.
func (_u *HintSessionEventUpdate) SetHadNarration(v bool) *HintSessionEventUpdate {
	_u.mutation.SetHadNarration(v)
	return _u
}

// SetNillableHadNarration sets the "had_narration" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableHadNarration(v *bool) *HintSessionEventUpdate {
	if v != nil {
		_u.SetHadNarration(*v)
	}
	return _u
}

// SetHadImage sets the "had_image" field.
func (_u *HintSessionEventUpdate) SetHadImage(v bool) *HintSessionEventUpdate {
	_u.mutation.SetHadImage(v)
	return _u
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableHadImage(v *bool) *HintSessionEventUpdate {
	if v != nil {
		_u.SetHadImage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *HintSessionEventUpdate) SetErrorMessage(v string) *HintSessionEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableErrorMessage(v *string) *HintSessionEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *HintSessionEventUpdate) SetDurationMs(v int64) *HintSessionEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *HintSessionEventUpdate) SetNillableDurationMs(v *int64) *HintSessionEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *HintSessionEventUpdate) AddDurationMs(v int64) *HintSessionEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the HintSessionEventMutation object of the builder.
func (_u *HintSessionEventUpdate) Mutation() *HintSessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HintSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HintSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintSessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintSessionEventUpdate) check() error {
	if v, ok := _u.mutation.TriggerReason(); ok {
		if err := hintsessionevent.TriggerReasonValidator(v); err != nil {
			return &ValidationError{Name: "trigger_reason", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.trigger_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := hintsessionevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *HintSessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintsessionevent.Table, hintsessionevent.Columns, sqlgraph.NewFieldSpec(hintsessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(hintsessionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(hintsessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(hintsessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TriggerReason(); ok {
		_spec.SetField(hintsessionevent.FieldTriggerReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(hintsessionevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintsessionevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(hintsessionevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.HadNarration(); ok {
		_spec.SetField(hintsessionevent.FieldHadNarration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HadImage(); ok {
		_spec.SetField(hintsessionevent.FieldHadImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(hintsessionevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(hintsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(hintsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HintSessionEventUpdateOne is the builder for updating a single HintSessionEvent entity.
type HintSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HintSessionEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *HintSessionEventUpdateOne) SetRunID(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableRunID(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *HintSessionEventUpdateOne) SetSessionID(v int64) *HintSessionEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableSessionID(v *int64) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *HintSessionEventUpdateOne) AddSessionID(v int64) *HintSessionEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetTriggerReason sets the "trigger_reason" field.
func (_u *HintSessionEventUpdateOne) SetTriggerReason(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetTriggerReason(v)
	return _u
}

// SetNillableTriggerReason sets the "trigger_reason" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableTriggerReason(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetTriggerReason(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *HintSessionEventUpdateOne) SetOutcome(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableOutcome(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetHintText sets the "hint_text" field.
func (_u *HintSessionEventUpdateOne) SetHintText(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetHintText(v)
	return _u
}

// SetNillableHintText sets the "hint_text" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableHintText(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetHintText(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *HintSessionEventUpdateOne) SetQuestionText(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableQuestionText(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetHadNarration sets the "had_narration" field.
func (_u *HintSessionEventUpdateOne) SetHadNarration(v bool) *HintSessionEventUpdateOne {
	_u.mutation.SetHadNarration(v)
	return _u
}

// SetNillableHadNarration sets the "had_narration" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableHadNarration(v *bool) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetHadNarration(*v)
	}
	return _u
}

// SetHadImage sets the "had_image" field.
func (_u *HintSessionEventUpdateOne) SetHadImage(v bool) *HintSessionEventUpdateOne {
	_u.mutation.SetHadImage(v)
	return _u
}

// SetNillableHadImage sets the "had_image" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableHadImage(v *bool) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetHadImage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *HintSessionEventUpdateOne) SetErrorMessage(v string) *HintSessionEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableErrorMessage(v *string) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *HintSessionEventUpdateOne) SetDurationMs(v int64) *HintSessionEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *HintSessionEventUpdateOne) SetNillableDurationMs(v *int64) *HintSessionEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *HintSessionEventUpdateOne) AddDurationMs(v int64) *HintSessionEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the HintSessionEventMutation object of the builder.
func (_u *HintSessionEventUpdateOne) Mutation() *HintSessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HintSessionEventUpdate builder.
func (_u *HintSessionEventUpdateOne) Where(ps ...predicate.HintSessionEvent) *HintSessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HintSessionEventUpdateOne) Select(field string, fields ...string) *HintSessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HintSessionEvent entity.
func (_u *HintSessionEventUpdateOne) Save(ctx context.Context) (*HintSessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HintSessionEventUpdateOne) SaveX(ctx context.Context) *HintSessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HintSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HintSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HintSessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.TriggerReason(); ok {
		if err := hintsessionevent.TriggerReasonValidator(v); err != nil {
			return &ValidationError{Name: "trigger_reason", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.trigger_reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := hintsessionevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "HintSessionEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *HintSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *HintSessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hintsessionevent.Table, hintsessionevent.Columns, sqlgraph.NewFieldSpec(hintsessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HintSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hintsessionevent.FieldID)
		for _, f := range fields {
			if !hintsessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hintsessionevent.FieldID {
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
		_spec.SetField(hintsessionevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(hintsessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(hintsessionevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TriggerReason(); ok {
		_spec.SetField(hintsessionevent.FieldTriggerReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(hintsessionevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintText(); ok {
		_spec.SetField(hintsessionevent.FieldHintText, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(hintsessionevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.HadNarration(); ok {
		_spec.SetField(hintsessionevent.FieldHadNarration, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HadImage(); ok {
		_spec.SetField(hintsessionevent.FieldHadImage, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(hintsessionevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(hintsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(hintsessionevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &HintSessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hintsessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
