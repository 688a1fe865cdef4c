package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryTransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Fatalf("Content = %s, want \"ok\"", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("CallCount = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("CallCount = %d, want 3", mock.CallCount())
	}
}

func TestMissingCredentialNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMissingCredential{Provider: "gemini"}},
		MockResponse{Content: json.RawMessage(`"never"`)},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var missing *ErrMissingCredential
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want ErrMissingCredential", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1 (no retry on missing credential)", mock.CallCount())
	}
}

func TestBackendRejectionNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrBackendRejection{Reason: "blocked"}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var rejected *ErrBackendRejection
	if !errors.As(err, &rejected) {
		t.Fatalf("error = %v, want ErrBackendRejection", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
}

func TestStreamEstablishRetried(t *testing.T) {
	mock := NewMockProvider()
	mock.AddStream(MockStream{StartErr: &ErrProviderUnavailable{}})
	mock.AddStream(MockStream{Chunks: []string{"ok"}})
	p := WithRetry(mock, fastRetryConfig())

	s, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	text, err := CollectStream(s)
	if err != nil || text != "ok" {
		t.Fatalf("CollectStream = (%q, %v), want (\"ok\", nil)", text, err)
	}
	if mock.StreamCallCount() != 2 {
		t.Fatalf("StreamCallCount = %d, want 2", mock.StreamCallCount())
	}
}

func TestStreamMidFailureNotRetried(t *testing.T) {
	mock := NewMockProvider()
	mock.AddStream(MockStream{Chunks: []string{"a"}, Err: &ErrProviderUnavailable{}})
	p := WithRetry(mock, fastRetryConfig())

	s, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}
	if _, err := CollectStream(s); err == nil {
		t.Fatal("expected mid-stream error to surface to the caller")
	}
	if mock.StreamCallCount() != 1 {
		t.Fatalf("StreamCallCount = %d, want 1 (mid-stream failures are not resumed)", mock.StreamCallCount())
	}
}
