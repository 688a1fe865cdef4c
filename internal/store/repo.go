package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	Streamed     bool
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event read back for inspection.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	Streamed     bool
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates LLM usage for one request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// HintSessionEventData records one hint session from trigger to its
// terminal state.
type HintSessionEventData struct {
	// RunID groups events recorded during one app run.
	RunID string

	// SessionID is the orchestrator's monotonic session id.
	SessionID int64

	// TriggerReason is which source opened the session.
	TriggerReason string

	// Outcome is the terminal state: ready, failed, or closed.
	Outcome string

	// HintText, QuestionText are the extracted fields, when present.
	HintText     string
	QuestionText string

	// HadNarration reports whether a narration script was extracted.
	HadNarration bool

	// HadImage reports whether a context snapshot made it into the
	// request.
	HadImage bool

	ErrorMessage string
	DurationMs   int64
}

// AnswerEventData records one answered problem.
type AnswerEventData struct {
	RunID         string
	QuestionText  string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
	Difficulty    string
	TimeMs        int
	HintUsed      bool
}

// AssetEventData records a derived-asset generation outcome.
type AssetEventData struct {
	// RunID groups events recorded during one app run.
	RunID     string
	SessionID int64

	// Kind is audio or video.
	Kind string

	// SourceText is the narration script or canonical question the asset
	// was keyed on.
	SourceText string

	Success      bool
	SizeBytes    int
	MimeType     string
	ErrorMessage string
}

// HintStats aggregates hint session history for the stats command.
type HintStats struct {
	Total     int
	Ready     int
	Failed    int
	Dismissed int
	ByReason  map[string]int
}

// AnswerStats aggregates answer history.
type AnswerStats struct {
	Total    int
	Correct  int
	HintUsed int
}

// SnapshotData captures rolled-up learner state at a point in time.
type SnapshotData struct {
	Version int `json:"version"`

	Answered int `json:"answered"`
	Correct  int `json:"correct"`
	Hints    int `json:"hints"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendHintSession records a finished hint session.
	AppendHintSession(ctx context.Context, data HintSessionEventData) error

	// AppendAnswer records an answered problem.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendAsset records a derived-asset generation outcome.
	AppendAsset(ctx context.Context, data AssetEventData) error

	// HintStats aggregates hint session outcomes.
	HintStats(ctx context.Context) (HintStats, error)

	// AnswerStats aggregates answer outcomes.
	AnswerStats(ctx context.Context) (AnswerStats, error)

	// LLMTokenTotals returns input and output token totals per provider.
	LLMTokenTotals(ctx context.Context) (map[string][2]int, error)

	// QueryLLMEvents returns recent LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM request event by id, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
