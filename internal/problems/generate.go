package problems

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/clulus/clulus/internal/llm"
)

const generateSystemPrompt = `You are a math tutor creating practice problems for a calculus student.

Rules:
- Generate a single multiple-choice problem at the requested difficulty.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use / for fractions, * for multiplication, ^ for exponents.
- The question must be clear and self-contained.
- Provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- The explanation should show the solution step by step.
- Do not repeat any question from the "already asked" list.`

// ProblemSchema constrains LLM problem generation responses.
var ProblemSchema = &llm.Schema{
	Name:        "calculus-problem",
	Description: "A single multiple-choice calculus problem with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner, in plain ASCII text",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options, exactly one of which is correct",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The text of the correct option, verbatim",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Step-by-step worked solution",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "The difficulty the problem was written at",
			},
		},
		"required":             []any{"question_text", "options", "answer", "explanation", "difficulty"},
		"additionalProperties": false,
	},
}

// GenerateInput is the context for one problem generation.
type GenerateInput struct {
	// Topic narrows the problem area, e.g. "derivatives of trig functions".
	Topic string

	// Difficulty the problem should be written at.
	Difficulty Difficulty

	// PriorQuestions are prompts already asked this run, for dedup.
	PriorQuestions []string
}

// Config bounds the generator.
type Config struct {
	Validators        []Validator
	MaxTokens         int
	Temperature       float64
	MaxPriorQuestions int
}

// DefaultConfig returns the standard validator chain and bounds.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&ChoicesValidator{},
		},
		MaxTokens:         768,
		Temperature:       0.7,
		MaxPriorQuestions: 8,
	}
}

// Generator produces problems from an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// problemOutput is the raw LLM response before validation.
type problemOutput struct {
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
}

// Generate produces a single validated problem.
func (g *Generator) Generate(ctx context.Context, input GenerateInput) (*Problem, error) {
	ctx = llm.WithPurpose(ctx, "problem-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      ProblemSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("problem generation failed: %w", err)
	}

	var raw problemOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse generated problem: %w", err)
	}

	p := &Problem{
		Text:        raw.QuestionText,
		Options:     raw.Options,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
		Difficulty:  Difficulty(raw.Difficulty),
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(p, input); verr != nil {
			return nil, verr
		}
	}

	return p, nil
}

// buildUserMessage constructs the user message from the input and limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	topic := input.Topic
	if topic == "" {
		topic = "single-variable calculus"
	}
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nAlready asked in this session:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max
// limit. Returns "None" if there are no prior questions.
func buildDedup(prior []string, max int) string {
	if len(prior) == 0 {
		return "None"
	}
	if max > 0 && len(prior) > max {
		prior = prior[len(prior)-max:]
	}
	var b strings.Builder
	for i, q := range prior {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
