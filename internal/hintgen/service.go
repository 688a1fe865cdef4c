// Package hintgen turns a problem context into a streamed hint request
// against the configured LLM provider. It owns the prompt and the
// request shape; session bookkeeping lives with the caller.
package hintgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/clulus/clulus/internal/llm"
)

// Input is everything one hint request needs.
type Input struct {
	// Image is an optional snapshot of the problem. Generation proceeds
	// without it when capture failed.
	Image     []byte
	ImageMIME string

	// Text is the problem statement or typed question, when known.
	Text string

	// Difficulty selects the hint register.
	Difficulty Difficulty
}

// Config bounds the request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard generation bounds. Hints are short;
// the token ceiling only needs to cover three tags.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Service issues hint generation requests.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service on the given provider.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// Start opens a hint stream for the input. It fails fast when the input
// carries neither an image nor text: there is nothing to hint about.
// The caller owns the returned stream and must drain or close it.
func (s *Service) Start(ctx context.Context, in Input) (llm.Stream, error) {
	if len(in.Image) == 0 && in.Text == "" {
		return nil, errors.New("hint request has no problem context")
	}

	ctx = llm.WithPurpose(ctx, "hint-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in)},
		},
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}
	if len(in.Image) > 0 {
		mime := in.ImageMIME
		if mime == "" {
			mime = "image/png"
		}
		req.Image = &llm.ImageAttachment{MIMEType: mime, Data: in.Image}
	}

	stream, err := s.provider.GenerateStream(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("hint stream failed to open: %w", err)
	}
	return stream, nil
}
