package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/console"
	"github.com/papapumpkin/perihelion/internal/game"
	"github.com/papapumpkin/perihelion/internal/source"
	"github.com/papapumpkin/perihelion/internal/telemetry"
	"github.com/papapumpkin/perihelion/internal/tui"
	"github.com/papapumpkin/perihelion/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Higher or Lower",
	Long: `Loads the bodies, shows the pregame menu and plays rounds until the
first wrong answer, then offers another game.

With --tui the game runs full screen: h or up guesses higher, l or down
guesses lower, enter starts a new game and q quits.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().Bool("tui", false, "play in the full-screen terminal UI")
	playCmd.Flags().Bool("reveal", false, "list every body and show the answer each round")
	playCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")
	playCmd.Flags().StringSlice("categories", nil, "enabled categories, e.g. mass,gravity")
	playCmd.Flags().String("telemetry", "", "append JSONL game events to this file")

	_ = viper.BindPFlag("tui", playCmd.Flags().Lookup("tui"))
	_ = viper.BindPFlag("reveal", playCmd.Flags().Lookup("reveal"))
	_ = viper.BindPFlag("seed", playCmd.Flags().Lookup("seed"))
	_ = viper.BindPFlag("categories", playCmd.Flags().Lookup("categories"))
	_ = viper.BindPFlag("telemetry_path", playCmd.Flags().Lookup("telemetry"))

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	emitter, err := openEmitter(cfg.TelemetryPath)
	if err != nil {
		return err
	}
	defer emitter.Close()

	loader := newLoader(cfg)
	rng := game.NewRand(cfg.Seed)
	logger := slog.Default().With("component", "game")

	if cfg.TUI {
		best, err := tui.Run(ctx, tui.Config{
			Load: func(ctx context.Context) ([]body.Body, error) {
				res, err := source.LoadBodies(ctx, loader, body.NewNormalizer())
				return res.Bodies, err
			},
			Settings: settings,
			Rand:     rng,
			Emitter:  emitter,
			Logger:   logger,
			Reveal:   cfg.Reveal,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Best score: %d\n", best)
		return nil
	}

	printer := ui.New()
	printer.SetReveal(cfg.Reveal)
	printer.Banner()

	if _, err := loadBodies(ctx, loader, printer); err != nil {
		return err
	}

	con := console.New(printer)
	err = playConsole(ctx, con, printer, loader, settings, cfg.Reveal, game.Options{
		Rand:    rng,
		Emitter: emitter,
		Logger:  logger,
	})
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		printer.Info("Thank you for playing!")
		return nil
	}
	return err
}

// playConsole runs the pregame menu and games until the player declines a
// replay. Every game reloads its bodies through l. Settings chosen in one
// pregame carry into the next.
func playConsole(ctx context.Context, con *console.Console, printer *ui.Printer, l source.Loader, settings category.Settings, reveal bool, opts game.Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	norm := body.NewNormalizer()
	for {
		var err error
		settings, err = con.Pregame(ctx, settings)
		if err != nil {
			return err
		}

		res, err := source.LoadBodies(ctx, l, norm)
		if err != nil {
			return err
		}
		cat, err := catalog.New(res.Bodies, opts.Rand)
		if err != nil {
			return err
		}
		if reveal {
			printer.Bodies(cat.Bodies())
		}

		opts.Settings = settings
		sess := game.New(cat, opts)
		score, err := sess.Play(ctx, con, printer)
		if err != nil {
			return fmt.Errorf("session %s: %w", sess.ID(), err)
		}
		opts.Logger.Info("game finished", "session", sess.ID(), "score", score)

		again, err := con.PlayAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// openEmitter opens the telemetry file, or returns a nil emitter when path is
// empty. A nil *telemetry.Emitter is a no-op.
func openEmitter(path string) (*telemetry.Emitter, error) {
	if path == "" {
		return nil, nil
	}
	e, err := telemetry.NewEmitter(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("telemetry enabled", "path", path)
	return e, nil
}

// cmdContext returns the command's context, or Background when the command
// was invoked directly rather than through Execute.
func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
