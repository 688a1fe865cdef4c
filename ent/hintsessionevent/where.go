// Code generated by ent, DO NOT EDIT.

package hintsessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clulus/clulus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldRunID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// TriggerReason applies equality check predicate on the "trigger_reason" field. It's identical to TriggerReasonEQ.
func TriggerReason(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldTriggerReason, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldOutcome, v))
}

// HintText applies equality check predicate on the "hint_text" field. It's identical to HintTextEQ.
func HintText(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHintText, v))
}

// QuestionText applies equality check predicate on the "question_text" field. It's identical to QuestionTextEQ.
func QuestionText(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldQuestionText, v))
}

// HadNarration applies equality check predicate on the "had_narration" field. It's identical to HadNarrationEQ.
func HadNarration(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHadNarration, v))
}

// HadImage applies equality check predicate on the "had_image" field. It's identical to HadImageEQ.
func HadImage(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHadImage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// TriggerReasonEQ applies the EQ predicate on the "trigger_reason" field.
func TriggerReasonEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldTriggerReason, v))
}

// TriggerReasonNEQ applies the NEQ predicate on the "trigger_reason" field.
func TriggerReasonNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldTriggerReason, v))
}

// TriggerReasonIn applies the In predicate on the "trigger_reason" field.
func TriggerReasonIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldTriggerReason, vs...))
}

// TriggerReasonNotIn applies the NotIn predicate on the "trigger_reason" field.
func TriggerReasonNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldTriggerReason, vs...))
}

// TriggerReasonGT applies the GT predicate on the "trigger_reason" field.
func TriggerReasonGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldTriggerReason, v))
}

// TriggerReasonGTE applies the GTE predicate on the "trigger_reason" field.
func TriggerReasonGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldTriggerReason, v))
}

// TriggerReasonLT applies the LT predicate on the "trigger_reason" field.
func TriggerReasonLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldTriggerReason, v))
}

// TriggerReasonLTE applies the LTE predicate on the "trigger_reason" field.
func TriggerReasonLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldTriggerReason, v))
}

// TriggerReasonContains applies the Contains predicate on the "trigger_reason" field.
func TriggerReasonContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldTriggerReason, v))
}

// TriggerReasonHasPrefix applies the HasPrefix predicate on the "trigger_reason" field.
func TriggerReasonHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldTriggerReason, v))
}

// TriggerReasonHasSuffix applies the HasSuffix predicate on the "trigger_reason" field.
func TriggerReasonHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldTriggerReason, v))
}

// TriggerReasonEqualFold applies the EqualFold predicate on the "trigger_reason" field.
func TriggerReasonEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldTriggerReason, v))
}

// TriggerReasonContainsFold applies the ContainsFold predicate on the "trigger_reason" field.
func TriggerReasonContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldTriggerReason, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldOutcome, v))
}

// HintTextEQ applies the EQ predicate on the "hint_text" field.
func HintTextEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHintText, v))
}

// HintTextNEQ applies the NEQ predicate on the "hint_text" field.
func HintTextNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldHintText, v))
}

// HintTextIn applies the In predicate on the "hint_text" field.
func HintTextIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldHintText, vs...))
}

// HintTextNotIn applies the NotIn predicate on the "hint_text" field.
func HintTextNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldHintText, vs...))
}

// HintTextGT applies the GT predicate on the "hint_text" field.
func HintTextGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldHintText, v))
}

// HintTextGTE applies the GTE predicate on the "hint_text" field.
func HintTextGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldHintText, v))
}

// HintTextLT applies the LT predicate on the "hint_text" field.
func HintTextLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldHintText, v))
}

// HintTextLTE applies the LTE predicate on the "hint_text" field.
func HintTextLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldHintText, v))
}

// HintTextContains applies the Contains predicate on the "hint_text" field.
func HintTextContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldHintText, v))
}

// HintTextHasPrefix applies the HasPrefix predicate on the "hint_text" field.
func HintTextHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldHintText, v))
}

// HintTextHasSuffix applies the HasSuffix predicate on the "hint_text" field.
func HintTextHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldHintText, v))
}

// HintTextEqualFold applies the EqualFold predicate on the "hint_text" field.
func HintTextEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldHintText, v))
}

// HintTextContainsFold applies the ContainsFold predicate on the "hint_text" field.
func HintTextContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldHintText, v))
}

// QuestionTextEQ applies the EQ predicate on the "question_text" field.
func QuestionTextEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldQuestionText, v))
}

// QuestionTextNEQ applies the NEQ predicate on the "question_text" field.
func QuestionTextNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldQuestionText, v))
}

// QuestionTextIn applies the In predicate on the "question_text" field.
func QuestionTextIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldQuestionText, vs...))
}

// QuestionTextNotIn applies the NotIn predicate on the "question_text" field.
func QuestionTextNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldQuestionText, vs...))
}

// QuestionTextGT applies the GT predicate on the "question_text" field.
func QuestionTextGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldQuestionText, v))
}

// QuestionTextGTE applies the GTE predicate on the "question_text" field.
func QuestionTextGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldQuestionText, v))
}

// QuestionTextLT applies the LT predicate on the "question_text" field.
func QuestionTextLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldQuestionText, v))
}

// QuestionTextLTE applies the LTE predicate on the "question_text" field.
func QuestionTextLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldQuestionText, v))
}

// QuestionTextContains applies the Contains predicate on the "question_text" field.
func QuestionTextContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldQuestionText, v))
}

// QuestionTextHasPrefix applies the HasPrefix predicate on the "question_text" field.
func QuestionTextHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldQuestionText, v))
}

// QuestionTextHasSuffix applies the HasSuffix predicate on the "question_text" field.
func QuestionTextHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldQuestionText, v))
}

// QuestionTextEqualFold applies the EqualFold predicate on the "question_text" field.
func QuestionTextEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldQuestionText, v))
}

// QuestionTextContainsFold applies the ContainsFold predicate on the "question_text" field.
func QuestionTextContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldQuestionText, v))
}

// HadNarrationEQ applies the EQ predicate on the "had_narration" field.
func HadNarrationEQ(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHadNarration, v))
}

// HadNarrationNEQ applies the NEQ predicate on the "had_narration" field.
func HadNarrationNEQ(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldHadNarration, v))
}

// HadImageEQ applies the EQ predicate on the "had_image" field.
func HadImageEQ(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldHadImage, v))
}

// HadImageNEQ applies the NEQ predicate on the "had_image" field.
func HadImageNEQ(v bool) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldHadImage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HintSessionEvent) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HintSessionEvent) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HintSessionEvent) predicate.HintSessionEvent {
	return predicate.HintSessionEvent(sql.NotPredicates(p))
}
