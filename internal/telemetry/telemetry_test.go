package telemetry

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// readEvents decodes every line of a JSONL stream.
func readEvents(t *testing.T, data []byte) []Event {
	t.Helper()
	var out []Event
	for i, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var evt Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("line %d is not an event: %v\n%s", i+1, err, line)
		}
		out = append(out, evt)
	}
	return out
}

func at(minute int) time.Time {
	return time.Date(2026, 3, 14, 12, minute, 0, 0, time.UTC)
}

func TestEmitter_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	sent := []Event{
		{Timestamp: at(0), Kind: KindSessionStart, SessionID: "s1", Data: map[string]any{"bodies": 2.0}},
		{Timestamp: at(1), Kind: KindRoundStart, SessionID: "s1", Round: 1, Data: map[string]any{"category": "gravity"}},
		{Timestamp: at(2), Kind: KindRoundJudged, SessionID: "s1", Round: 1, Data: map[string]any{"correct": false}},
		{Timestamp: at(3), Kind: KindSessionEnd, SessionID: "s1", Round: 1, Data: map[string]any{"score": 0.0}},
	}
	for _, evt := range sent {
		if err := em.Emit(evt); err != nil {
			t.Fatalf("Emit(%s): %v", evt.Kind, err)
		}
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sent, readEvents(t, data)); diff != "" {
		t.Errorf("events mismatch (-sent +read):\n%s", diff)
	}
}

func TestNewEmitter_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := NewEmitter(filepath.Join(t.TempDir(), "missing", "events.jsonl"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestEmit_StampsZeroTimestamp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	em := NewWriterEmitter(&buf)
	before := time.Now().UTC().Add(-time.Second)
	if err := em.Emit(Event{Kind: KindRoundStart, SessionID: "s"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	got := readEvents(t, buf.Bytes())
	if len(got) != 1 || got[0].Timestamp.Before(before) {
		t.Errorf("got %+v, want one event stamped after %v", got, before)
	}
}

func TestEmit_ConcurrentWritersKeepLinesWhole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	em := NewWriterEmitter(&buf)

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := em.Emit(Event{Kind: KindRoundStart, SessionID: "c", Round: i + 1}); err != nil {
				t.Errorf("Emit: %v", err)
			}
		}()
	}
	wg.Wait()

	rounds := make(map[int]bool)
	for _, evt := range readEvents(t, buf.Bytes()) {
		rounds[evt.Round] = true
	}
	if len(rounds) != n {
		t.Errorf("decoded %d distinct rounds, want %d", len(rounds), n)
	}
}

func TestNilEmitter_NoOp(t *testing.T) {
	t.Parallel()

	var em *Emitter
	if err := em.Emit(Event{Kind: KindSessionStart}); err != nil {
		t.Errorf("Emit on nil: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Errorf("Close on nil: %v", err)
	}
}

func TestClose_NonCloserWriter(t *testing.T) {
	t.Parallel()

	if err := NewWriterEmitter(&bytes.Buffer{}).Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewEmitter_Appends(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "append.jsonl")
	for _, kind := range []string{KindSessionStart, KindSessionEnd} {
		em, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("NewEmitter: %v", err)
		}
		if err := em.Emit(Event{Kind: kind, SessionID: "s1"}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		em.Close()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	for _, evt := range readEvents(t, data) {
		kinds = append(kinds, evt.Kind)
	}
	if diff := cmp.Diff([]string{KindSessionStart, KindSessionEnd}, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestEvent_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Event{Timestamp: at(0), Kind: KindSessionStart, SessionID: "s1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{`"round"`, `"data"`} {
		if bytes.Contains(data, []byte(key)) {
			t.Errorf("%s should be omitted: %s", key, data)
		}
	}
}
