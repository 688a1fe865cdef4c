package practice

import (
	"time"

	"github.com/clulus/clulus/internal/llm"
	"github.com/clulus/clulus/internal/problems"
	"github.com/clulus/clulus/internal/sentiment"
)

// tickMsg drives the countdown and every dwell gate.
type tickMsg time.Time

// sentimentTickMsg schedules the next classifier poll.
type sentimentTickMsg time.Time

// problemReadyMsg is sent when the next problem is available.
type problemReadyMsg struct {
	Problem *problems.Problem
	Err     error
}

// captureDoneMsg carries the context snapshot for session id.
type captureDoneMsg struct {
	id    uint64
	image []byte
	mime  string
	err   error
}

// streamOpenedMsg is sent when the hint stream is established.
type streamOpenedMsg struct {
	id     uint64
	stream llm.Stream
}

// streamFailedMsg is sent when the hint stream could not be opened.
type streamFailedMsg struct {
	id  uint64
	err error
}

// hintChunkMsg carries one streamed chunk for session id.
type hintChunkMsg struct {
	id    uint64
	chunk string
}

// hintStreamEndMsg is sent when the stream finishes. A nil err means a
// clean end of stream.
type hintStreamEndMsg struct {
	id  uint64
	err error
}

// audioResultMsg carries a speech synthesis outcome for asset request id.
type audioResultMsg struct {
	id      uint64
	payload []byte
	mime    string
	err     error
}

// animResultMsg carries a video generation outcome for asset request id.
type animResultMsg struct {
	id      uint64
	payload []byte
	mime    string
	err     error
}

// sentimentResultMsg carries one classifier reading.
type sentimentResultMsg struct {
	reading sentiment.Reading
	err     error
}
