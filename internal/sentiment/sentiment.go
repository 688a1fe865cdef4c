// Package sentiment consumes the external facial-sentiment classifier:
// it polls at a fixed interval, keeps a rolling window of recent
// readings, and hands them to the confusion trigger. A dead or absent
// classifier silently disables the trigger; it never degrades the hint
// flow.
package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Env vars.
const EnvBaseURL = "CLULUS_SENTIMENT_URL"

const defaultBaseURL = "http://localhost:8000"

// SampleInterval is how often the classifier is polled.
const SampleInterval = 500 * time.Millisecond

// WindowSize is how many recent readings are retained.
const WindowSize = 10

// Reading is one classifier result.
type Reading struct {
	Label      string    `json:"sentiment"`
	Confidence float64   `json:"confidence"`
	Timestamp  time.Time `json:"-"`
}

// Classifier produces one reading per call.
type Classifier interface {
	Classify(ctx context.Context) (Reading, error)
}

// Client polls the sentiment analysis HTTP backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given backend.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 2 * time.Second},
	}
}

// NewClientFromEnv builds a client from environment variables.
func NewClientFromEnv() *Client {
	return NewClient(os.Getenv(EnvBaseURL))
}

type classifyRequest struct {
	Timestamp int64 `json:"timestamp"`
}

type classifyResponse struct {
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
	Timestamp  int64   `json:"timestamp"`
}

// Classify implements Classifier against the analyze-sentiment endpoint.
// The backend owns the camera; this side only asks for the verdict.
func (c *Client) Classify(ctx context.Context) (Reading, error) {
	body, err := json.Marshal(classifyRequest{Timestamp: time.Now().UnixMilli()})
	if err != nil {
		return Reading{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze-sentiment", bytes.NewReader(body))
	if err != nil {
		return Reading{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Reading{}, fmt.Errorf("sentiment analysis failed: status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Reading{}, fmt.Errorf("decoding sentiment response: %w", err)
	}
	return Reading{
		Label:      out.Sentiment,
		Confidence: out.Confidence,
		Timestamp:  time.UnixMilli(out.Timestamp),
	}, nil
}

// Window is the rolling buffer of recent readings.
type Window struct {
	readings []Reading
	max      int
}

// NewWindow creates a window retaining up to max readings.
func NewWindow(max int) *Window {
	return &Window{max: max}
}

// Add appends a reading, evicting the oldest past capacity.
func (w *Window) Add(r Reading) {
	w.readings = append(w.readings, r)
	if len(w.readings) > w.max {
		w.readings = w.readings[len(w.readings)-w.max:]
	}
}

// Recent returns the retained readings, oldest first.
func (w *Window) Recent() []Reading {
	return w.readings
}

// Latest returns the newest reading, if any.
func (w *Window) Latest() (Reading, bool) {
	if len(w.readings) == 0 {
		return Reading{}, false
	}
	return w.readings[len(w.readings)-1], true
}

// Clear drops all readings.
func (w *Window) Clear() {
	w.readings = nil
}
