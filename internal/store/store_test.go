package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestHintSessionStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	sessions := []HintSessionEventData{
		{SessionID: 1, TriggerReason: "keyboard", Outcome: "ready", HintText: "factor first", HadImage: true},
		{SessionID: 2, TriggerReason: "hover", Outcome: "failed", ErrorMessage: "provider unavailable"},
		{SessionID: 3, TriggerReason: "keyboard", Outcome: "closed"},
	}
	for _, d := range sessions {
		if err := repo.AppendHintSession(ctx, d); err != nil {
			t.Fatalf("append hint session: %v", err)
		}
	}

	stats, err := repo.HintStats(ctx)
	if err != nil {
		t.Fatalf("hint stats: %v", err)
	}
	if stats.Total != 3 || stats.Ready != 1 || stats.Failed != 1 || stats.Dismissed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	if stats.ByReason["keyboard"] != 2 {
		t.Fatalf("keyboard count = %d, want 2", stats.ByReason["keyboard"])
	}
}

func TestAnswerStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{QuestionText: "q1", CorrectAnswer: "a", LearnerAnswer: "a", Correct: true, Difficulty: "easy", TimeMs: 5000},
		{QuestionText: "q2", CorrectAnswer: "b", LearnerAnswer: "c", Correct: false, Difficulty: "easy", TimeMs: 9000, HintUsed: true},
	}
	for _, d := range answers {
		if err := repo.AppendAnswer(ctx, d); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.AnswerStats(ctx)
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	if stats.Total != 2 || stats.Correct != 1 || stats.HintUsed != 1 {
		t.Fatalf("stats = %+v", stats)
	}
}

func TestLLMTokenTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "m", Purpose: "hint-gen", Streamed: true, InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "m", Purpose: "problem-gen", InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "m", Purpose: "hint-gen", InputTokens: 10, OutputTokens: 5, Success: false, ErrorMessage: "rate limited"},
	}
	for _, d := range events {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	totals, err := repo.LLMTokenTotals(ctx)
	if err != nil {
		t.Fatalf("token totals: %v", err)
	}
	if got := totals["gemini"]; got != [2]int{300, 130} {
		t.Fatalf("gemini totals = %v", got)
	}
	if got := totals["openai"]; got != [2]int{10, 5} {
		t.Fatalf("openai totals = %v", got)
	}
}

func TestLLMQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "m1", Purpose: "hint-gen", Streamed: true, InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "m1", Purpose: "hint-gen", Streamed: true, InputTokens: 120, OutputTokens: 60, LatencyMs: 600, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "problem-gen", InputTokens: 80, OutputTokens: 40, LatencyMs: 200, Success: true},
	}
	for _, d := range events {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	recs, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query llm events: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	// Newest first.
	if recs[0].Sequence <= recs[1].Sequence {
		t.Fatalf("records not in descending sequence order: %d, %d", recs[0].Sequence, recs[1].Sequence)
	}

	rec, err := repo.GetLLMEvent(ctx, recs[0].ID)
	if err != nil {
		t.Fatalf("get llm event: %v", err)
	}
	if rec == nil || rec.ID != recs[0].ID {
		t.Fatalf("record = %+v", rec)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing llm event: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for missing event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("got %d purposes, want 2", len(byPurpose))
	}
	for _, u := range byPurpose {
		if u.Purpose == "hint-gen" {
			if u.Calls != 2 || u.InputTokens != 220 || u.OutputTokens != 110 {
				t.Fatalf("hint-gen usage = %+v", u)
			}
			if u.AvgLatencyMs != 500 {
				t.Fatalf("hint-gen avg latency = %d, want 500", u.AvgLatencyMs)
			}
		}
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Fatalf("got %d models, want 2", len(byModel))
	}
}

func TestAppendAsset(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAsset(ctx, AssetEventData{
		SessionID:  1,
		Kind:       "video",
		SourceText: "Solve x^2=9",
		Success:    true,
		SizeBytes:  1024,
		MimeType:   "video/mp4",
	})
	if err != nil {
		t.Fatalf("append asset: %v", err)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Answered: 7, Correct: 5, Hints: 2},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 42 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Data.Answered != 7 || snap.Data.Correct != 5 || snap.Data.Hints != 2 {
		t.Fatalf("data = %+v", snap.Data)
	}
}

func TestSequenceOrderingAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendHintSession(ctx, HintSessionEventData{SessionID: 1, TriggerReason: "hover", Outcome: "ready"}); err != nil {
		t.Fatal(err)
	}
	if err := repo.AppendAnswer(ctx, AnswerEventData{QuestionText: "q", CorrectAnswer: "a", Correct: true, Difficulty: "easy", TimeMs: 1}); err != nil {
		t.Fatal(err)
	}

	var hintSeq, answerSeq int64
	if err := s.DB().QueryRow("SELECT sequence FROM hint_session_events").Scan(&hintSeq); err != nil {
		t.Fatalf("query hint sequence: %v", err)
	}
	if err := s.DB().QueryRow("SELECT sequence FROM answer_events").Scan(&answerSeq); err != nil {
		t.Fatalf("query answer sequence: %v", err)
	}
	if answerSeq <= hintSeq {
		t.Fatalf("answer sequence %d not after hint sequence %d", answerSeq, hintSeq)
	}
}
