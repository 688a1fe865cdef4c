package llm

import (
	"context"
	"encoding/json"
	"io"
)

// Provider is the core abstraction for LLM interaction.
//
// Generate is the single-shot structured path (used by the problem
// generator). GenerateStream is the incremental path used for hint
// generation, where chunks are surfaced to the UI as they arrive.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// The request's Schema field, when set, instructs the provider to return
	// JSON conforming to that schema. The response Content will be the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// GenerateStream sends a prompt and returns a finite, ordered stream of
	// text chunks. The stream is not restartable; regeneration requires a
	// fresh call. Schema is ignored on this path.
	GenerateStream(ctx context.Context, req Request) (Stream, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Stream yields text chunks in arrival order.
// Recv returns io.EOF after the final chunk. Close releases the underlying
// connection and may be called at any time to abandon the stream.
type Stream interface {
	Recv() (string, error)
	Close() error
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. For single-turn generation
	// (the common case in Clulus), this contains one user message.
	Messages []Message

	// Image is an optional image attachment sent alongside the first user
	// message. Used for problem snapshots. Providers attach it to the
	// request in their native inline format.
	Image *ImageAttachment

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is raw text as json.RawMessage.
	// Only honored by Generate; streamed requests are always plain text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// ImageAttachment is an inline image payload for multimodal requests.
type ImageAttachment struct {
	// MIMEType is the image media type, e.g. "image/png".
	MIMEType string

	// Data is the raw (not base64-encoded) image bytes.
	Data []byte
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "math-problem".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object. When no Schema was
	// provided, this is the raw text response wrapped as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// CollectStream drains a stream to completion and returns the concatenated
// text. Intended for callers that don't need incremental delivery.
func CollectStream(s Stream) (string, error) {
	defer s.Close()
	var out []byte
	for {
		chunk, err := s.Recv()
		if err == io.EOF {
			return string(out), nil
		}
		if err != nil {
			return string(out), err
		}
		out = append(out, chunk...)
	}
}

// resolveModel maps a friendly model name to a concrete model ID,
// passing through unknown names unchanged.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
