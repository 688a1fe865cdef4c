package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered problem.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Default("").
			Comment("App-run UUID grouping events from one sitting"),
		field.String("question_text").
			NotEmpty().
			Comment("The question shown"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The text of the correct option"),
		field.String("learner_answer").
			Default("").
			Comment("What the learner picked; empty on timeout"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.Bool("hint_used").
			Default(false).
			Comment("Whether a hint reached ready during this problem"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("correct"),
		index.Fields("difficulty"),
	}
}
