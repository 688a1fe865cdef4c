// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/clulus/clulus/ent/hintsessionevent"
)

// HintSessionEvent is the model entity for the HintSessionEvent schema.
type HintSessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// App-run UUID grouping events from one sitting
	RunID string `json:"run_id,omitempty"`
	// Orchestrator's monotonic session id
	SessionID int64 `json:"session_id,omitempty"`
	// countdown, hover, keyboard, or confusion
	TriggerReason string `json:"trigger_reason,omitempty"`
	// Terminal state: ready, failed, or closed
	Outcome string `json:"outcome,omitempty"`
	// Extracted hint, when the session reached ready
	HintText string `json:"hint_text,omitempty"`
	// Extracted canonical question, when present
	QuestionText string `json:"question_text,omitempty"`
	// Whether a narration script was extracted
	HadNarration bool `json:"had_narration,omitempty"`
	// Whether a context snapshot was attached to the request
	HadImage bool `json:"had_image,omitempty"`
	// Diagnostic for failed sessions
	ErrorMessage string `json:"error_message,omitempty"`
	// Trigger to terminal state
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HintSessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hintsessionevent.FieldHadNarration, hintsessionevent.FieldHadImage:
			values[i] = new(sql.NullBool)
		case hintsessionevent.FieldID, hintsessionevent.FieldSequence, hintsessionevent.FieldSessionID, hintsessionevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case hintsessionevent.FieldRunID, hintsessionevent.FieldTriggerReason, hintsessionevent.FieldOutcome, hintsessionevent.FieldHintText, hintsessionevent.FieldQuestionText, hintsessionevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case hintsessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HintSessionEvent fields.
func (_m *HintSessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hintsessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case hintsessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case hintsessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case hintsessionevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case hintsessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.Int64
			}
		case hintsessionevent.FieldTriggerReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_reason", values[i])
			} else if value.Valid {
				_m.TriggerReason = value.String
			}
		case hintsessionevent.FieldOutcome:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				_m.Outcome = value.String
			}
		case hintsessionevent.FieldHintText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hint_text", values[i])
			} else if value.Valid {
				_m.HintText = value.String
			}
		case hintsessionevent.FieldQuestionText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_text", values[i])
			} else if value.Valid {
				_m.QuestionText = value.String
			}
		case hintsessionevent.FieldHadNarration:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field had_narration", values[i])
			} else if value.Valid {
				_m.HadNarration = value.Bool
			}
		case hintsessionevent.FieldHadImage:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field had_image", values[i])
			} else if value.Valid {
				_m.HadImage = value.Bool
			}
		case hintsessionevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case hintsessionevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HintSessionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *HintSessionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this HintSessionEvent.
// Note that you need to call HintSessionEvent.Unwrap() before calling this method if this HintSessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HintSessionEvent) Update() *HintSessionEventUpdateOne {
	return NewHintSessionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HintSessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HintSessionEvent) Unwrap() *HintSessionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HintSessionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HintSessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("HintSessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionID))
	builder.WriteString(", ")
	builder.WriteString("trigger_reason=")
	builder.WriteString(_m.TriggerReason)
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(_m.Outcome)
	builder.WriteString(", ")
	builder.WriteString("hint_text=")
	builder.WriteString(_m.HintText)
	builder.WriteString(", ")
	builder.WriteString("question_text=")
	builder.WriteString(_m.QuestionText)
	builder.WriteString(", ")
	builder.WriteString("had_narration=")
	builder.WriteString(fmt.Sprintf("%v", _m.HadNarration))
	builder.WriteString(", ")
	builder.WriteString("had_image=")
	builder.WriteString(fmt.Sprintf("%v", _m.HadImage))
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// HintSessionEvents is a parsable slice of HintSessionEvent.
type HintSessionEvents []*HintSessionEvent
