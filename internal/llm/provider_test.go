package llm

import (
	"context"
	"io"
	"testing"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name     string
		models   map[string]string
		input    string
		expected string
	}{
		{"gemini friendly", geminiModels, "gemini-flash", "gemini-2.0-flash"},
		{"gemini passthrough", geminiModels, "gemini-2.5-pro", "gemini-2.5-pro"},
		{"openai friendly", openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{"anthropic friendly", anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{"anthropic passthrough", anthropicModels, "claude-sonnet-4-20250514", "claude-sonnet-4-20250514"},
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, tt.models)
		if got != tt.expected {
			t.Errorf("%s: resolveModel(%q) = %q, want %q", tt.name, tt.input, got, tt.expected)
		}
	}
}

func TestMockStreamOrder(t *testing.T) {
	p := NewMockProvider()
	p.AddStream(MockStream{Chunks: []string{"alpha ", "beta ", "gamma"}})

	s, err := p.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("GenerateStream: %v", err)
	}

	var got []string
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Recv: %v", err)
		}
		got = append(got, chunk)
	}

	want := []string{"alpha ", "beta ", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("received %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk %d = %q, want %q (order must be preserved)", i, got[i], want[i])
		}
	}
}

func TestCollectStream(t *testing.T) {
	p := NewMockProvider()
	p.AddStream(MockStream{Chunks: []string{"hello ", "world"}})

	s, _ := p.GenerateStream(context.Background(), Request{})
	text, err := CollectStream(s)
	if err != nil {
		t.Fatalf("CollectStream: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("CollectStream = %q, want %q", text, "hello world")
	}
}

func TestCollectStreamPartialOnError(t *testing.T) {
	p := NewMockProvider()
	p.AddStream(MockStream{
		Chunks: []string{"partial "},
		Err:    &ErrProviderUnavailable{},
	})

	s, _ := p.GenerateStream(context.Background(), Request{})
	text, err := CollectStream(s)
	if err == nil {
		t.Fatal("expected mid-stream error")
	}
	if text != "partial " {
		t.Fatalf("partial text = %q, want %q", text, "partial ")
	}
}

func TestMockStreamExhausted(t *testing.T) {
	p := NewMockProvider()
	if _, err := p.GenerateStream(context.Background(), Request{}); err == nil {
		t.Fatal("expected error when no canned streams remain")
	}
}
