package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
)

// Format is a snapshot file encoding.
type Format int

// Supported snapshot formats.
const (
	FormatJSON Format = iota
	FormatTOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// FileLoader reads a snapshot saved by `perihelion fetch` or downloaded by
// hand from the API.
type FileLoader struct {
	path string
}

// NewFileLoader returns a loader for path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Name returns the file path.
func (l *FileLoader) Name() string { return l.path }

// Path returns the file path.
func (l *FileLoader) Path() string { return l.path }

// Load reads and decodes the file.
func (l *FileLoader) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	format, err := FormatOf(l.path)
	if err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot: %w", err)
	}
	return Decode(data, format)
}

// Decode parses a snapshot in the given format.
func Decode(data []byte, format Format) (Snapshot, error) {
	var snap Snapshot
	switch format {
	case FormatJSON:
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("parsing json snapshot: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("parsing toml snapshot: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return snap, nil
}

// Encode renders a snapshot in the given format.
func Encode(snap Snapshot, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json snapshot: %w", err)
		}
		return append(data, '\n'), nil
	case FormatTOML:
		data, err := toml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encoding toml snapshot: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// WriteSnapshot writes snap to path in the format implied by its extension.
// The file is written to a temporary sibling first and renamed into place so
// a running watcher never sees a half-written snapshot.
func WriteSnapshot(path string, snap Snapshot) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Encode(snap, format)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming snapshot: %w", err)
	}
	return nil
}
