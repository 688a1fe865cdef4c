package hintgen

import (
	"context"
	"strings"
	"testing"

	"github.com/clulus/clulus/internal/llm"
)

func TestStartRequiresContext(t *testing.T) {
	svc := New(llm.NewMockProvider(), DefaultConfig())

	if _, err := svc.Start(context.Background(), Input{}); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestStartAttachesImage(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Chunks: []string{"<hint>ok</hint>"}})
	svc := New(mock, DefaultConfig())

	img := []byte{0x89, 0x50, 0x4e, 0x47}
	stream, err := svc.Start(context.Background(), Input{Image: img})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer stream.Close()

	if mock.StreamCallCount() != 1 {
		t.Fatalf("stream calls = %d, want 1", mock.StreamCallCount())
	}
	req := mock.StreamCalls[0]
	if req.Image == nil || len(req.Image.Data) != len(img) {
		t.Fatal("image not attached to request")
	}
	if req.Image.MIMEType != "image/png" {
		t.Fatalf("mime = %q, want default image/png", req.Image.MIMEType)
	}
}

func TestStartTextOnly(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.AddStream(llm.MockStream{Chunks: []string{"<hint>ok</hint>"}})
	svc := New(mock, DefaultConfig())

	stream, err := svc.Start(context.Background(), Input{
		Text:       "Solve x^2 = 9",
		Difficulty: DifficultyHard,
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer stream.Close()

	req := mock.StreamCalls[0]
	if req.Image != nil {
		t.Fatal("unexpected image attachment")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "Solve x^2 = 9") {
		t.Fatalf("typed question missing from prompt:\n%s", user)
	}
	if !strings.Contains(user, difficultyRegisters[DifficultyHard]) {
		t.Fatal("hard register missing from prompt")
	}
}

func TestUnknownDifficultyFallsBackToMedium(t *testing.T) {
	msg := buildUserMessage(Input{Text: "x", Difficulty: Difficulty("expert")})
	if !strings.Contains(msg, difficultyRegisters[DifficultyMedium]) {
		t.Fatal("expected medium register fallback")
	}
}

func TestSystemPromptNamesAllTags(t *testing.T) {
	for _, tag := range []string{"<hint>", "<audio_script>", "<question>"} {
		if !strings.Contains(systemPrompt, tag) {
			t.Fatalf("system prompt missing %s", tag)
		}
	}
}
