package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/papapumpkin/perihelion/internal/body"
	"github.com/papapumpkin/perihelion/internal/catalog"
	"github.com/papapumpkin/perihelion/internal/config"
	"github.com/papapumpkin/perihelion/internal/source"
	"github.com/papapumpkin/perihelion/internal/ui"
)

// newLoader builds the loader selected by cfg. Website loads are cached for
// cfg.CacheTTL so a replay within the same run does not hit the API again.
func newLoader(cfg config.Config) source.Loader {
	if cfg.Mode() == source.ModeFile {
		return source.NewFileLoader(cfg.DataFile)
	}
	logger := slog.Default().With("component", "source")
	l := source.NewHTTPLoader(cfg.APIURL,
		source.WithTimeout(cfg.HTTPTimeout),
		source.WithLogger(logger),
	)
	if cfg.CacheTTL <= 0 {
		return l
	}
	return source.NewCachingLoader(l, cfg.CacheTTL)
}

// loadBodies loads and normalizes every record, prints the load summary and
// fails when nothing is playable.
func loadBodies(ctx context.Context, l source.Loader, printer *ui.Printer) (source.Result, error) {
	res, err := source.LoadBodies(ctx, l, body.NewNormalizer())
	if err != nil {
		return source.Result{}, err
	}
	printer.LoadSummary(l.Name(), len(res.Bodies), res.Skipped)
	if len(res.Bodies) == 0 {
		return source.Result{}, fmt.Errorf("%s: %w", l.Name(), catalog.ErrEmptyCatalog)
	}
	return res, nil
}
