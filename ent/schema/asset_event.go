package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssetEvent records a derived-asset generation outcome (audio or video).
type AssetEvent struct {
	ent.Schema
}

func (AssetEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AssetEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			Default("").
			Comment("App-run UUID grouping events from one sitting"),
		field.Int64("session_id").
			Comment("Hint session the asset belonged to"),
		field.String("kind").
			NotEmpty().
			Comment("audio or video"),
		field.Text("source_text").
			NotEmpty().
			Comment("Narration script or canonical question the asset was keyed on"),
		field.Bool("success").
			Comment("Whether generation produced a payload"),
		field.Int("size_bytes").
			Default(0).
			Comment("Payload size"),
		field.String("mime_type").
			Default("").
			Comment("Payload MIME type"),
		field.String("error_message").
			Default("").
			Comment("Diagnostic for failures"),
	}
}

func (AssetEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("success"),
	}
}
