package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/category"
	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/game"
	"github.com/papapumpkin/perihelion/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the config and count usable bodies per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ config valid (source %s)\n", cfg.Mode())

		ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		printer := ui.New()
		res, err := loadBodies(ctx, newLoader(cfg), printer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ source: %v\n", err)
			os.Exit(1)
		}

		cat, err := catalog.New(res.Bodies, game.NewRand(cfg.Seed))
		if err != nil {
			return err
		}
		counts := make(map[category.Category]int, len(category.All))
		for _, c := range category.All {
			counts[c] = cat.Count(c)
		}
		printer.CategoryCounts(cat.Len(), counts)

		settings, _ := cfg.Settings()
		ok := true
		for _, c := range settings.Enabled() {
			if counts[c] < 2 {
				fmt.Fprintf(os.Stderr, "✗ %s: fewer than two bodies have a value\n", c)
				ok = false
			}
		}
		if !ok {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
