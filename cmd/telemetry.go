package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/telemetry"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [file]",
	Short: "View JSONL game events",
	Long: `Reads and formats the JSONL telemetry file written by play --telemetry.

Without a file argument, reads telemetry_path from the config.
With --follow (-f), watches the file for new events (like tail -f).
With --session, prints only the events of one session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().String("session", "", "only show events for this session ID")
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	session, _ := cmd.Flags().GetString("session")
	follow, _ := cmd.Flags().GetBool("follow")

	path, err := resolveTelemetryPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	p := eventPrinter{w: cmd.OutOrStdout(), session: session}

	// Print all existing events.
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		p.print(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		return nil
	}

	return tailFollow(p, f, path)
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(p eventPrinter, f *os.File, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	reader := bufio.NewReader(f)
	for event := range watcher.Events {
		if event.Op&fsnotify.Write == 0 {
			continue
		}
		// Read all new lines available.
		for {
			line, err := reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if line != "" {
				p.print(line)
			}
			if err != nil {
				break
			}
		}
	}
	return nil
}

// eventPrinter renders JSONL lines, optionally filtered to one session.
type eventPrinter struct {
	w       io.Writer
	session string
}

// print decodes a JSONL line and prints a human-readable representation.
func (p eventPrinter) print(line string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(p.w, "??? %s\n", line)
		return
	}
	if p.session != "" && evt.SessionID != p.session {
		return
	}

	ts := evt.Timestamp.Local().Format(time.TimeOnly)
	var parts []string
	parts = append(parts, fmt.Sprintf("[%s]", ts))
	parts = append(parts, evt.Kind)

	if evt.SessionID != "" {
		parts = append(parts, fmt.Sprintf("session=%s", shortID(evt.SessionID)))
	}
	if evt.Round != 0 {
		parts = append(parts, fmt.Sprintf("round=%d", evt.Round))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(p.w, strings.Join(parts, " "))
}

// shortID trims a UUID to its first group.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// formatDataMap formats a data map as key=value pairs sorted by key.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%v", k, m[k])
	}
	return b.String()
}

// resolveTelemetryPath returns the file argument, or telemetry_path from the
// config when no argument is given.
func resolveTelemetryPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TelemetryPath == "" {
		return "", fmt.Errorf("telemetry: no file given and telemetry_path is not set")
	}
	return cfg.TelemetryPath, nil
}
