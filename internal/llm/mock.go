package llm

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockStream is a canned chunk sequence for the MockProvider.
type MockStream struct {
	// Chunks are returned one per Recv call, in order.
	Chunks []string
	// Err, when set, is returned after the chunks instead of io.EOF.
	Err error
	// StartErr, when set, fails GenerateStream itself.
	StartErr error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	streams   []MockStream
	Calls     []Request
	// StreamCalls records requests made through GenerateStream.
	StreamCalls []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateStream returns the next canned stream or ErrProviderUnavailable
// if the queue is empty.
func (m *MockProvider) GenerateStream(_ context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.StreamCalls = append(m.StreamCalls, req)

	if len(m.streams) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	s := m.streams[0]
	m.streams = m.streams[1:]

	if s.StartErr != nil {
		return nil, s.StartErr
	}

	return &mockStream{chunks: s.Chunks, err: s.Err}, nil
}

type mockStream struct {
	chunks []string
	err    error
	closed bool
}

func (s *mockStream) Recv() (string, error) {
	if s.closed {
		return "", io.EOF
	}
	if len(s.chunks) == 0 {
		if s.err != nil {
			return "", s.err
		}
		return "", io.EOF
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	return chunk, nil
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// AddStream appends a canned stream to the queue.
func (m *MockProvider) AddStream(s MockStream) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streams = append(m.streams, s)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// StreamCallCount returns the number of GenerateStream calls made.
func (m *MockProvider) StreamCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.StreamCalls)
}
