// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/clulus/clulus/ent/answerevent"
	"github.com/clulus/clulus/ent/assetevent"
	"github.com/clulus/clulus/ent/hintsessionevent"
	"github.com/clulus/clulus/ent/llmrequestevent"
	"github.com/clulus/clulus/ent/schema"
	"github.com/clulus/clulus/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRunID is the schema descriptor for run_id field.
	answereventDescRunID := answereventFields[0].Descriptor()
	// answerevent.DefaultRunID holds the default value on creation for the run_id field.
	answerevent.DefaultRunID = answereventDescRunID.Default.(string)
	// answereventDescQuestionText is the schema descriptor for question_text field.
	answereventDescQuestionText := answereventFields[1].Descriptor()
	// answerevent.QuestionTextValidator is a validator for the "question_text" field. It is called by the builders before save.
	answerevent.QuestionTextValidator = answereventDescQuestionText.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[2].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[3].Descriptor()
	// answerevent.DefaultLearnerAnswer holds the default value on creation for the learner_answer field.
	answerevent.DefaultLearnerAnswer = answereventDescLearnerAnswer.Default.(string)
	// answereventDescDifficulty is the schema descriptor for difficulty field.
	answereventDescDifficulty := answereventFields[5].Descriptor()
	// answerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	answerevent.DifficultyValidator = answereventDescDifficulty.Validators[0].(func(string) error)
	// answereventDescHintUsed is the schema descriptor for hint_used field.
	answereventDescHintUsed := answereventFields[7].Descriptor()
	// answerevent.DefaultHintUsed holds the default value on creation for the hint_used field.
	answerevent.DefaultHintUsed = answereventDescHintUsed.Default.(bool)
	asseteventMixin := schema.AssetEvent{}.Mixin()
	asseteventMixinFields0 := asseteventMixin[0].Fields()
	_ = asseteventMixinFields0
	asseteventFields := schema.AssetEvent{}.Fields()
	_ = asseteventFields
	// asseteventDescTimestamp is the schema descriptor for timestamp field.
	asseteventDescTimestamp := asseteventMixinFields0[1].Descriptor()
	// assetevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assetevent.DefaultTimestamp = asseteventDescTimestamp.Default.(func() time.Time)
	// asseteventDescRunID is the schema descriptor for run_id field.
	asseteventDescRunID := asseteventFields[0].Descriptor()
	// assetevent.DefaultRunID holds the default value on creation for the run_id field.
	assetevent.DefaultRunID = asseteventDescRunID.Default.(string)
	// asseteventDescKind is the schema descriptor for kind field.
	asseteventDescKind := asseteventFields[2].Descriptor()
	// assetevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	assetevent.KindValidator = asseteventDescKind.Validators[0].(func(string) error)
	// asseteventDescSourceText is the schema descriptor for source_text field.
	asseteventDescSourceText := asseteventFields[3].Descriptor()
	// assetevent.SourceTextValidator is a validator for the "source_text" field. It is called by the builders before save.
	assetevent.SourceTextValidator = asseteventDescSourceText.Validators[0].(func(string) error)
	// asseteventDescSizeBytes is the schema descriptor for size_bytes field.
	asseteventDescSizeBytes := asseteventFields[5].Descriptor()
	// assetevent.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	assetevent.DefaultSizeBytes = asseteventDescSizeBytes.Default.(int)
	// asseteventDescMimeType is the schema descriptor for mime_type field.
	asseteventDescMimeType := asseteventFields[6].Descriptor()
	// assetevent.DefaultMimeType holds the default value on creation for the mime_type field.
	assetevent.DefaultMimeType = asseteventDescMimeType.Default.(string)
	// asseteventDescErrorMessage is the schema descriptor for error_message field.
	asseteventDescErrorMessage := asseteventFields[7].Descriptor()
	// assetevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	assetevent.DefaultErrorMessage = asseteventDescErrorMessage.Default.(string)
	hintsessioneventMixin := schema.HintSessionEvent{}.Mixin()
	hintsessioneventMixinFields0 := hintsessioneventMixin[0].Fields()
	_ = hintsessioneventMixinFields0
	hintsessioneventFields := schema.HintSessionEvent{}.Fields()
	_ = hintsessioneventFields
	// hintsessioneventDescTimestamp is the schema descriptor for timestamp field.
	hintsessioneventDescTimestamp := hintsessioneventMixinFields0[1].Descriptor()
	// hintsessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintsessionevent.DefaultTimestamp = hintsessioneventDescTimestamp.Default.(func() time.Time)
	// hintsessioneventDescRunID is the schema descriptor for run_id field.
	hintsessioneventDescRunID := hintsessioneventFields[0].Descriptor()
	// hintsessionevent.DefaultRunID holds the default value on creation for the run_id field.
	hintsessionevent.DefaultRunID = hintsessioneventDescRunID.Default.(string)
	// hintsessioneventDescTriggerReason is the schema descriptor for trigger_reason field.
	hintsessioneventDescTriggerReason := hintsessioneventFields[2].Descriptor()
	// hintsessionevent.TriggerReasonValidator is a validator for the "trigger_reason" field. It is called by the builders before save.
	hintsessionevent.TriggerReasonValidator = hintsessioneventDescTriggerReason.Validators[0].(func(string) error)
	// hintsessioneventDescOutcome is the schema descriptor for outcome field.
	hintsessioneventDescOutcome := hintsessioneventFields[3].Descriptor()
	// hintsessionevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	hintsessionevent.OutcomeValidator = hintsessioneventDescOutcome.Validators[0].(func(string) error)
	// hintsessioneventDescHintText is the schema descriptor for hint_text field.
	hintsessioneventDescHintText := hintsessioneventFields[4].Descriptor()
	// hintsessionevent.DefaultHintText holds the default value on creation for the hint_text field.
	hintsessionevent.DefaultHintText = hintsessioneventDescHintText.Default.(string)
	// hintsessioneventDescQuestionText is the schema descriptor for question_text field.
	hintsessioneventDescQuestionText := hintsessioneventFields[5].Descriptor()
	// hintsessionevent.DefaultQuestionText holds the default value on creation for the question_text field.
	hintsessionevent.DefaultQuestionText = hintsessioneventDescQuestionText.Default.(string)
	// hintsessioneventDescHadNarration is the schema descriptor for had_narration field.
	hintsessioneventDescHadNarration := hintsessioneventFields[6].Descriptor()
	// hintsessionevent.DefaultHadNarration holds the default value on creation for the had_narration field.
	hintsessionevent.DefaultHadNarration = hintsessioneventDescHadNarration.Default.(bool)
	// hintsessioneventDescHadImage is the schema descriptor for had_image field.
	hintsessioneventDescHadImage := hintsessioneventFields[7].Descriptor()
	// hintsessionevent.DefaultHadImage holds the default value on creation for the had_image field.
	hintsessionevent.DefaultHadImage = hintsessioneventDescHadImage.Default.(bool)
	// hintsessioneventDescErrorMessage is the schema descriptor for error_message field.
	hintsessioneventDescErrorMessage := hintsessioneventFields[8].Descriptor()
	// hintsessionevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	hintsessionevent.DefaultErrorMessage = hintsessioneventDescErrorMessage.Default.(string)
	// hintsessioneventDescDurationMs is the schema descriptor for duration_ms field.
	hintsessioneventDescDurationMs := hintsessioneventFields[9].Descriptor()
	// hintsessionevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	hintsessionevent.DefaultDurationMs = hintsessioneventDescDurationMs.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescStreamed is the schema descriptor for streamed field.
	llmrequesteventDescStreamed := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultStreamed holds the default value on creation for the streamed field.
	llmrequestevent.DefaultStreamed = llmrequesteventDescStreamed.Default.(bool)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
