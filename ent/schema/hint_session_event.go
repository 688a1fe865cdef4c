package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HintSessionEvent records one hint session from trigger to its terminal
// state.
type HintSessionEvent struct {
	ent.Schema
}

func (HintSessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HintSessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Default("").
			Comment("App-run UUID grouping events from one sitting"),
		field.Int64("session_id").
			Comment("Orchestrator's monotonic session id"),
		field.String("trigger_reason").
			NotEmpty().
			Comment("countdown, hover, keyboard, or confusion"),
		field.String("outcome").
			NotEmpty().
			Comment("Terminal state: ready, failed, or closed"),
		field.Text("hint_text").
			Default("").
			Comment("Extracted hint, when the session reached ready"),
		field.Text("question_text").
			Default("").
			Comment("Extracted canonical question, when present"),
		field.Bool("had_narration").
			Default(false).
			Comment("Whether a narration script was extracted"),
		field.Bool("had_image").
			Default(false).
			Comment("Whether a context snapshot was attached to the request"),
		field.String("error_message").
			Default("").
			Comment("Diagnostic for failed sessions"),
		field.Int64("duration_ms").
			Default(0).
			Comment("Trigger to terminal state"),
	}
}

func (HintSessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("trigger_reason"),
		index.Fields("outcome"),
	}
}
