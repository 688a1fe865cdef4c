// Package anim requests an animated explanation of a canonical question
// from the video generation backend. One request/response call, no
// streaming; the backend renders and returns the whole clip inline.
package anim

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Env vars.
const EnvBaseURL = "CLULUS_VIDEO_BACKEND_URL"

const defaultBaseURL = "http://localhost:8080"

// Generator produces a video payload for a question.
type Generator interface {
	Generate(ctx context.Context, question string) ([]byte, string, error)
}

// Client calls the video generation backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given backend. Rendering is slow;
// the timeout allows for a full scene build.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
}

// NewClientFromEnv builds a client from environment variables.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv(EnvBaseURL))
}

type generateRequest struct {
	Question string `json:"question"`
}

type generateResponse struct {
	Success   bool   `json:"success"`
	VideoBlob string `json:"video_blob"`
	MimeType  string `json:"mimetype"`
	Size      int    `json:"size"`
	Error     string `json:"error"`
}

// Generate requests a clip for the question and returns the decoded
// payload. success:false and non-2xx statuses are both failures.
func (c *Client) Generate(ctx context.Context, question string) ([]byte, string, error) {
	body, err := json.Marshal(generateRequest{Question: question})
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate_video_blob", bytes.NewReader(body))
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("video generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("video generation failed: status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, "", fmt.Errorf("decoding video response: %w", err)
	}
	if !out.Success {
		if out.Error != "" {
			return nil, "", fmt.Errorf("video generation failed: %s", out.Error)
		}
		return nil, "", fmt.Errorf("video generation failed")
	}

	payload, err := base64.StdEncoding.DecodeString(out.VideoBlob)
	if err != nil {
		return nil, "", fmt.Errorf("decoding video payload: %w", err)
	}
	mime := out.MimeType
	if mime == "" {
		mime = "video/mp4"
	}
	return payload, mime, nil
}
