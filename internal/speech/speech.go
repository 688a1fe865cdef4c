// Package speech synthesizes hint narration through an ElevenLabs-style
// text-to-speech HTTP API. Synthesis is optional: any failure here
// surfaces as a retryable asset failure, never as a hint failure.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Env vars.
const (
	EnvAPIKey  = "CLULUS_ELEVENLABS_API_KEY"
	EnvVoiceID = "CLULUS_ELEVENLABS_VOICE"
	EnvBaseURL = "CLULUS_ELEVENLABS_BASE_URL"
)

const (
	defaultBaseURL = "https://api.elevenlabs.io"
	defaultVoiceID = "JBFqnCBsd6RMkjVDRZzb"
	defaultModelID = "eleven_multilingual_v2"
)

// ErrMissingAPIKey fails synthesis before any request is made.
var ErrMissingAPIKey = fmt.Errorf("missing %s", EnvAPIKey)

// Synthesizer turns narration text into a playable audio payload.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}

// Client calls the text-to-speech API.
type Client struct {
	apiKey  string
	voiceID string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given credentials. Empty voiceID
// and baseURL fall back to defaults.
func NewClient(apiKey, voiceID, baseURL string) *Client {
	if voiceID == "" {
		voiceID = defaultVoiceID
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		voiceID: voiceID,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// NewClientFromEnv builds a client from environment variables.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv(EnvAPIKey), os.Getenv(EnvVoiceID), os.Getenv(EnvBaseURL))
}

type synthesisRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize requests audio for the narration text. The returned MIME
// type comes from the response Content-Type.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if c.apiKey == "" {
		return nil, "", ErrMissingAPIKey
	}

	body, err := json.Marshal(synthesisRequest{Text: text, ModelID: defaultModelID})
	if err != nil {
		return nil, "", err
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, c.voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("speech synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, "", fmt.Errorf("speech synthesis failed: status %d: %s", resp.StatusCode, snippet)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("reading audio payload: %w", err)
	}
	mime := resp.Header.Get("Content-Type")
	if mime == "" {
		mime = "audio/mpeg"
	}
	return audio, mime, nil
}
