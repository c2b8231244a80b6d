package layout

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/zoneglow/internal/zone"
)

// BuildAll builds layouts for all zones using up to workers goroutines.
// The result keeps the input order.
func BuildAll(ctx context.Context, descs []zone.Description, defaultSpacing float64, workers int) ([]Layout, error) {
	if workers <= 0 {
		workers = 1
	}

	out := make([]Layout, len(descs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range descs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Build(descs[i], defaultSpacing)
			if out[i].Empty() {
				slog.Warn("zone produced no border nodes", "zone", descs[i].ID, "shape", descs[i].Shape)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("building layouts: %w", err)
	}
	return out, nil
}
