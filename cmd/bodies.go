package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/source"
	"github.com/papapumpkin/perihelion/internal/ui"
)

var bodiesCmd = &cobra.Command{
	Use:   "bodies",
	Short: "List the playable bodies",
	Long: `Loads the configured source and prints every body that survives
normalization, with its type and the value of each category.

With --watch (file source only), the listing is printed again whenever the
data file changes.`,
	Args: cobra.NoArgs,
	RunE: runBodies,
}

func init() {
	bodiesCmd.Flags().BoolP("watch", "w", false, "re-list when the data file changes")
	rootCmd.AddCommand(bodiesCmd)
}

func runBodies(cmd *cobra.Command, _ []string) error {
	watch, _ := cmd.Flags().GetBool("watch")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if watch && cfg.Mode() != source.ModeFile {
		return fmt.Errorf("%w: --watch needs the file source", config.ErrInvalidSource)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer := ui.New()
	loader := newLoader(cfg)
	if err := listBodies(ctx, loader, printer); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchBodies(ctx, cfg.DataFile, loader, printer)
}

func listBodies(ctx context.Context, l source.Loader, printer *ui.Printer) error {
	res, err := loadBodies(ctx, l, printer)
	if err != nil {
		return err
	}
	printer.Bodies(res.Bodies)
	return nil
}

// watchBodies re-lists the data file on every change until ctx is done. A
// file that fails to load is reported and the watch carries on.
func watchBodies(ctx context.Context, path string, l source.Loader, printer *ui.Printer) error {
	w, err := source.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	printer.Info(fmt.Sprintf("watching %s (ctrl+c to stop)", w.File))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		w.Stop()
		return nil
	})
	g.Go(func() error {
		for range w.Changes {
			slog.Debug("data file changed", "path", w.File)
			if err := listBodies(ctx, l, printer); err != nil {
				printer.Error(err.Error())
			}
		}
		return nil
	})
	return g.Wait()
}
