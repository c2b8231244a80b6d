package layout

import (
	"context"
	"fmt"
	"log/slog"
)

// Placer instantiates the tiles of a layout, e.g. in a game world or a store.
type Placer interface {
	Place(ctx context.Context, l Layout) error
}

// PlacerFunc adapts a function to Placer.
type PlacerFunc func(ctx context.Context, l Layout) error

// Place calls f.
func (f PlacerFunc) Place(ctx context.Context, l Layout) error { return f(ctx, l) }

// Apply hands every non-empty layout to p in order and stops at the first error.
func Apply(ctx context.Context, p Placer, layouts []Layout) error {
	for _, l := range layouts {
		if l.Empty() {
			slog.Debug("skip empty layout", "zone", l.ZoneID)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Place(ctx, l); err != nil {
			return fmt.Errorf("placing zone %q: %w", l.ZoneID, err)
		}
	}
	return nil
}
