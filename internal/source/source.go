// Package source loads raw body records from the Solar System OpenData API
// or from a local snapshot file, and turns them into playable bodies.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/papapumpkin/perihelion/internal/body"
)

// DefaultURL is the public endpoint listing every known body.
const DefaultURL = "https://api.le-systeme-solaire.net/rest/bodies/"

// Snapshot is the payload shape shared by the API and snapshot files.
type Snapshot struct {
	Bodies []body.RawBody `json:"bodies" toml:"bodies"`
}

// Loader fetches a snapshot of raw records.
type Loader interface {
	// Name describes the loader for logs, e.g. the URL or file path.
	Name() string
	Load(ctx context.Context) (Snapshot, error)
}

// Mode selects where records come from.
type Mode int

const (
	ModeWebsite Mode = iota // Fetch from the REST endpoint (default).
	ModeFile                // Read a local snapshot.
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeWebsite:
		return "website"
	case ModeFile:
		return "file"
	default:
		return "unknown"
	}
}

// ParseMode parses "website" or "file", ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "website":
		return ModeWebsite, nil
	case "file":
		return ModeFile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Result is a normalized snapshot.
type Result struct {
	Bodies  []body.Body
	Skipped int // malformed records dropped by the normalizer
	Total   int
}

// LoadBodies loads a snapshot through l and normalizes every record.
func LoadBodies(ctx context.Context, l Loader, n *body.Normalizer) (Result, error) {
	snap, err := l.Load(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load %s: %w", l.Name(), err)
	}
	bodies, skipped := n.NormalizeAll(snap.Bodies)
	return Result{Bodies: bodies, Skipped: skipped, Total: len(snap.Bodies)}, nil
}
