// Package telemetry records a game session as a JSONL event stream: when it
// started, every round dealt, every verdict, and the final score. The stream
// makes runs auditable and lets a debugging session be replayed by hand.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Event kinds identify the type of telemetry event.
const (
	KindSessionStart = "session_start"
	KindRoundStart   = "round_start"
	KindRoundJudged  = "round_judged"
	KindSessionEnd   = "session_end"
)

// Event represents a single telemetry record. Each event carries a timestamp,
// a kind tag, the session it belongs to, the round number when relevant, and
// arbitrary structured data.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	SessionID string    `json:"session"`
	Round     int       `json:"round,omitempty"`
	Data      any       `json:"data,omitempty"`
}

// Emitter writes telemetry events as JSON lines. It is safe for concurrent
// use. A nil *Emitter is a valid no-op emitter.
type Emitter struct {
	w   io.Writer
	enc *jsoniter.Encoder
	mu  sync.Mutex
}

// NewEmitter creates an Emitter that appends to the file at path, creating
// it if needed.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return NewWriterEmitter(f), nil
}

// NewWriterEmitter creates an Emitter on an arbitrary writer. Close closes w
// if it implements io.Closer.
func NewWriterEmitter(w io.Writer) *Emitter {
	return &Emitter{
		w:   w,
		enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w),
	}
}

// Emit writes a single event. A zero Timestamp is replaced with the current
// time. Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying writer when it is closable. Calling Close on a
// nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.w.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}
