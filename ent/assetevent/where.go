// Code generated by ent, DO NOT EDIT.

package assetevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/clulus/clulus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldRunID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSessionID, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldKind, v))
}

// SourceText applies equality check predicate on the "source_text" field. It's identical to SourceTextEQ.
func SourceText(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSourceText, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSuccess, v))
}

// SizeBytes applies equality check predicate on the "size_bytes" field. It's identical to SizeBytesEQ.
func SizeBytes(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSizeBytes, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldMimeType, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int64) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldSessionID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContainsFold(FieldKind, v))
}

// SourceTextEQ applies the EQ predicate on the "source_text" field.
func SourceTextEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSourceText, v))
}

// SourceTextNEQ applies the NEQ predicate on the "source_text" field.
func SourceTextNEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldSourceText, v))
}

// SourceTextIn applies the In predicate on the "source_text" field.
func SourceTextIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldSourceText, vs...))
}

// SourceTextNotIn applies the NotIn predicate on the "source_text" field.
func SourceTextNotIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldSourceText, vs...))
}

// SourceTextGT applies the GT predicate on the "source_text" field.
func SourceTextGT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldSourceText, v))
}

// SourceTextGTE applies the GTE predicate on the "source_text" field.
func SourceTextGTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldSourceText, v))
}

// SourceTextLT applies the LT predicate on the "source_text" field.
func SourceTextLT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldSourceText, v))
}

// SourceTextLTE applies the LTE predicate on the "source_text" field.
func SourceTextLTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldSourceText, v))
}

// SourceTextContains applies the Contains predicate on the "source_text" field.
func SourceTextContains(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContains(FieldSourceText, v))
}

// SourceTextHasPrefix applies the HasPrefix predicate on the "source_text" field.
func SourceTextHasPrefix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasPrefix(FieldSourceText, v))
}

// SourceTextHasSuffix applies the HasSuffix predicate on the "source_text" field.
func SourceTextHasSuffix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasSuffix(FieldSourceText, v))
}

// SourceTextEqualFold applies the EqualFold predicate on the "source_text" field.
func SourceTextEqualFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEqualFold(FieldSourceText, v))
}

// SourceTextContainsFold applies the ContainsFold predicate on the "source_text" field.
func SourceTextContainsFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContainsFold(FieldSourceText, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldSuccess, v))
}

// SizeBytesEQ applies the EQ predicate on the "size_bytes" field.
func SizeBytesEQ(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldSizeBytes, v))
}

// SizeBytesNEQ applies the NEQ predicate on the "size_bytes" field.
func SizeBytesNEQ(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldSizeBytes, v))
}

// SizeBytesIn applies the In predicate on the "size_bytes" field.
func SizeBytesIn(vs ...int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldSizeBytes, vs...))
}

// SizeBytesNotIn applies the NotIn predicate on the "size_bytes" field.
func SizeBytesNotIn(vs ...int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldSizeBytes, vs...))
}

// SizeBytesGT applies the GT predicate on the "size_bytes" field.
func SizeBytesGT(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldSizeBytes, v))
}

// SizeBytesGTE applies the GTE predicate on the "size_bytes" field.
func SizeBytesGTE(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldSizeBytes, v))
}

// SizeBytesLT applies the LT predicate on the "size_bytes" field.
func SizeBytesLT(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldSizeBytes, v))
}

// SizeBytesLTE applies the LTE predicate on the "size_bytes" field.
func SizeBytesLTE(v int) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldSizeBytes, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContainsFold(FieldMimeType, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.AssetEvent {
	return predicate.AssetEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AssetEvent) predicate.AssetEvent {
	return predicate.AssetEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AssetEvent) predicate.AssetEvent {
	return predicate.AssetEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AssetEvent) predicate.AssetEvent {
	return predicate.AssetEvent(sql.NotPredicates(p))
}
