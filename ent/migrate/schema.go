// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "question_text", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString, Default: ""},
		{Name: "correct", Type: field.TypeBool},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "time_ms", Type: field.TypeInt},
		{Name: "hint_used", Type: field.TypeBool, Default: false},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[7]},
			},
			{
				Name:    "answerevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[8]},
			},
		},
	}
	// AssetEventsColumns holds the columns for the "asset_events" table.
	AssetEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "kind", Type: field.TypeString},
		{Name: "source_text", Type: field.TypeString, Size: 2147483647},
		{Name: "success", Type: field.TypeBool},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "mime_type", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// AssetEventsTable holds the schema information for the "asset_events" table.
	AssetEventsTable = &schema.Table{
		Name:       "asset_events",
		Columns:    AssetEventsColumns,
		PrimaryKey: []*schema.Column{AssetEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assetevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssetEventsColumns[1]},
			},
			{
				Name:    "assetevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssetEventsColumns[2]},
			},
			{
				Name:    "assetevent_kind",
				Unique:  false,
				Columns: []*schema.Column{AssetEventsColumns[5]},
			},
			{
				Name:    "assetevent_success",
				Unique:  false,
				Columns: []*schema.Column{AssetEventsColumns[7]},
			},
		},
	}
	// HintSessionEventsColumns holds the columns for the "hint_session_events" table.
	HintSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "trigger_reason", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "hint_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "question_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "had_narration", Type: field.TypeBool, Default: false},
		{Name: "had_image", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// HintSessionEventsTable holds the schema information for the "hint_session_events" table.
	HintSessionEventsTable = &schema.Table{
		Name:       "hint_session_events",
		Columns:    HintSessionEventsColumns,
		PrimaryKey: []*schema.Column{HintSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "hintsessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{HintSessionEventsColumns[1]},
			},
			{
				Name:    "hintsessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{HintSessionEventsColumns[2]},
			},
			{
				Name:    "hintsessionevent_trigger_reason",
				Unique:  false,
				Columns: []*schema.Column{HintSessionEventsColumns[5]},
			},
			{
				Name:    "hintsessionevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{HintSessionEventsColumns[6]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "streamed", Type: field.TypeBool, Default: false},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[10]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AssetEventsTable,
		HintSessionEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
