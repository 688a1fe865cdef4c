package problems

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/clulus/clulus/internal/llm"
)

func validOutput() problemOutput {
	return problemOutput{
		QuestionText: "What is the derivative of x^3?",
		Options:      []string{"3x^2", "x^2", "3x", "x^3/3"},
		Answer:       "3x^2",
		Explanation:  "By the power rule, d/dx(x^n) = n*x^(n-1), so d/dx(x^3) = 3x^2.",
		Difficulty:   "easy",
	}
}

func mockResponse(t *testing.T, out problemOutput) llm.MockResponse {
	t.Helper()
	raw, err := json.Marshal(out)
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: raw}
}

func TestGenerateValidProblem(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, validOutput()))
	g := NewGenerator(mock, DefaultConfig())

	p, err := g.Generate(context.Background(), GenerateInput{
		Topic:      "derivatives",
		Difficulty: DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Text != "What is the derivative of x^3?" {
		t.Fatalf("text = %q", p.Text)
	}
	if p.CorrectIndex() != 0 {
		t.Fatalf("correct index = %d, want 0", p.CorrectIndex())
	}

	req := mock.Calls[0]
	if req.Schema != ProblemSchema {
		t.Fatal("schema not attached to request")
	}
	if !strings.Contains(req.Messages[0].Content, "derivatives") {
		t.Fatal("topic missing from prompt")
	}
}

func TestGenerateRejectsAnswerNotInOptions(t *testing.T) {
	out := validOutput()
	out.Answer = "2x^2"
	mock := llm.NewMockProvider(mockResponse(t, out))
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Difficulty: DifficultyEasy})
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Validator != "choices" {
		t.Fatalf("validator = %q, want choices", verr.Validator)
	}
}

func TestGenerateRejectsBadDifficulty(t *testing.T) {
	out := validOutput()
	out.Difficulty = "impossible"
	mock := llm.NewMockProvider(mockResponse(t, out))
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{Difficulty: DifficultyEasy})
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Validator != "structural" {
		t.Fatalf("validator = %q, want structural", verr.Validator)
	}
}

func TestGenerateRejectsDuplicateOptions(t *testing.T) {
	out := validOutput()
	out.Options = []string{"3x^2", "3x^2 ", "3x", "x^3/3"}
	mock := llm.NewMockProvider(mockResponse(t, out))
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), GenerateInput{Difficulty: DifficultyEasy}); err == nil {
		t.Fatal("duplicate options accepted")
	}
}

func TestDedupInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(mockResponse(t, validOutput()))
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), GenerateInput{
		Difficulty:     DifficultyMedium,
		PriorQuestions: []string{"What is d/dx sin(x)?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "What is d/dx sin(x)?") {
		t.Fatal("prior question missing from dedup list")
	}
}
