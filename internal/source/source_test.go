package source

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/papapumpkin/perihelion/internal/body"
)

func TestParseMode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"website", ModeWebsite, false},
		{"FILE", ModeFile, false},
		{" file ", ModeFile, false},
		{"ftp", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if ModeFile.String() != "file" || Mode(7).String() != "unknown" {
		t.Error("unexpected Mode.String output")
	}
}

type staticLoader struct {
	snap  Snapshot
	err   error
	calls int
}

func (l *staticLoader) Name() string { return "static" }

func (l *staticLoader) Load(context.Context) (Snapshot, error) {
	l.calls++
	return l.snap, l.err
}

func TestLoadBodies(t *testing.T) {
	t.Parallel()
	snap, err := Decode([]byte(samplePayload), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	res, err := LoadBodies(context.Background(), &staticLoader{snap: snap}, body.NewNormalizer())
	if err != nil {
		t.Fatalf("LoadBodies: %v", err)
	}
	if res.Total != 4 || res.Skipped != 2 || len(res.Bodies) != 2 {
		t.Errorf("got total=%d skipped=%d bodies=%d, want 4/2/2", res.Total, res.Skipped, len(res.Bodies))
	}
}

func TestLoadBodies_WrapsLoaderError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	_, err := LoadBodies(context.Background(), &staticLoader{err: boom}, body.NewNormalizer())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped boom", err)
	}
}

func TestCachingLoader(t *testing.T) {
	t.Parallel()
	inner := &staticLoader{snap: Snapshot{Bodies: make([]body.RawBody, 3)}}
	l := NewCachingLoader(inner, time.Minute)

	for i := 0; i < 3; i++ {
		snap, err := l.Load(context.Background())
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if len(snap.Bodies) != 3 {
			t.Fatalf("len = %d, want 3", len(snap.Bodies))
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner loader called %d times, want 1", inner.calls)
	}

	l.Invalidate()
	if _, err := l.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if inner.calls != 2 {
		t.Errorf("inner loader called %d times after Invalidate, want 2", inner.calls)
	}
	if l.Name() != "static" {
		t.Errorf("Name() = %q", l.Name())
	}
}

func TestCachingLoader_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()
	inner := &staticLoader{err: errors.New("offline")}
	l := NewCachingLoader(inner, time.Minute)

	for i := 0; i < 2; i++ {
		if _, err := l.Load(context.Background()); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("inner loader called %d times, want 2", inner.calls)
	}
}
