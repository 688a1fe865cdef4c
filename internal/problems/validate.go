package problems

import (
	"fmt"
	"strings"
)

// Validator checks a generated problem before it reaches the learner.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g.
	// "structural", "choices".
	Name() string

	// Validate returns nil when the problem passes.
	Validate(p *Problem, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated problem was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks field presence, length limits, and the
// difficulty enum.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if p.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(p.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if p.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(p.Explanation) > 1500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1500 characters",
			Retryable: true,
		}
	}
	switch p.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be \"easy\", \"medium\", or \"hard\"",
			Retryable: true,
		}
	}
	return nil
}

// ChoicesValidator checks that there are exactly 4 options and that
// exactly one of them matches the answer.
type ChoicesValidator struct{}

func (v *ChoicesValidator) Name() string { return "choices" }

func (v *ChoicesValidator) Validate(p *Problem, _ GenerateInput) *ValidationError {
	if len(p.Options) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected 4 options, got %d", len(p.Options)),
			Retryable: true,
		}
	}
	matches := 0
	for _, opt := range p.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(p.Answer)) {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer must match exactly one option, matched %d", matches),
			Retryable: true,
		}
	}
	seen := make(map[string]bool, len(p.Options))
	for _, opt := range p.Options {
		key := strings.ToLower(strings.TrimSpace(opt))
		if seen[key] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate option %q", opt),
				Retryable: true,
			}
		}
		seen[key] = true
	}
	return nil
}
