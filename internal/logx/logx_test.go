package logx

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	t.Parallel()
	if got := Level(true); got != slog.LevelDebug {
		t.Errorf("Level(true) = %v, want debug", got)
	}
	if got := Level(false); got != slog.LevelWarn {
		t.Errorf("Level(false) = %v, want warn", got)
	}
}

func TestNew_FiltersByVerbosity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		verbose bool
		wantDbg bool
	}{
		{"quiet", false, false},
		{"verbose", true, true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose)
			l.Debug("round dealt")
			l.Warn("telemetry emit failed", Error(errors.New("disk full")))

			out := buf.String()
			if got := strings.Contains(out, "round dealt"); got != tt.wantDbg {
				t.Errorf("debug line present = %v, want %v:\n%s", got, tt.wantDbg, out)
			}
			if !strings.Contains(out, "disk full") {
				t.Errorf("warn line missing error:\n%s", out)
			}
		})
	}
}

func TestNew_NoColorForBuffers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	New(&buf, true).Info("hello")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected plain output for a non-terminal writer, got %q", buf.String())
	}
}
