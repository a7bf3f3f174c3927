package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/source"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Save the API payload as a local snapshot",
	Long: `Downloads the bodies listing from the API and writes the fields the game
uses to a snapshot file. The format follows the extension: .json or .toml.

Play from the snapshot with --source file --data-file <path>.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("out", "o", "bodies.json", "snapshot path (.json or .toml)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	if _, err := source.FormatOf(out); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := source.NewHTTPLoader(cfg.APIURL, source.WithTimeout(cfg.HTTPTimeout))
	snap, err := l.Load(ctx)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", l.Name(), err)
	}
	if err := source.WriteSnapshot(out, snap); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ wrote %s records from %s to %s\n",
		humanize.Comma(int64(len(snap.Bodies))), l.Name(), out)
	return nil
}
