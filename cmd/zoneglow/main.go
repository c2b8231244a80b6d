// Command zoneglow generates glow border layouts for the zones in a catalog.
//
// Usage:
//
//	go run ./cmd/zoneglow [-zone id[,id...]] [-spacing 1.0] [-output yaml|json|none] [-store] [-preview]
//
// Layouts are written to stdout, logs go to stderr. With -store the layouts
// are saved to PostgreSQL; unchanged layouts are skipped by fingerprint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/udisondev/zoneglow/internal/catalog"
	"github.com/udisondev/zoneglow/internal/config"
	"github.com/udisondev/zoneglow/internal/db"
	"github.com/udisondev/zoneglow/internal/layout"
	"github.com/udisondev/zoneglow/internal/preview"
	"github.com/udisondev/zoneglow/internal/zone"
)

const ConfigPath = "config/zoneglow.yaml"

var errUnknownZone = errors.New("unknown zone")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	// .env необязателен
	_ = godotenv.Load(".env")

	cfgPath := ConfigPath
	if p := os.Getenv("ZONEGLOW_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadGenerator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg.ApplyEnv()

	fs := flag.NewFlagSet("zoneglow", flag.ContinueOnError)
	zones := fs.String("zone", "", "comma-separated zone ids (default: all zones)")
	fs.Float64Var(&cfg.Spacing, "spacing", cfg.Spacing, "default spacing between nodes")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output format: yaml, json or none")
	fs.BoolVar(&cfg.Store, "store", cfg.Store, "save layouts to the database")
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "draw the first layout in the terminal")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	descs, err := selectZones(cat, *zones)
	if err != nil {
		return err
	}

	layouts, err := layout.BuildAll(ctx, descs, cfg.Spacing, cfg.Workers)
	if err != nil {
		return fmt.Errorf("building layouts: %w", err)
	}
	for _, l := range layouts {
		s := l.Summary()
		slog.Info("layout built",
			"zone", l.ZoneID,
			"nodes", s.Nodes,
			"straight", s.Straight,
			"inside", s.InsideCorner,
			"outside", s.OutsideCorner,
			"end_cap", s.EndCap)
	}

	if cfg.Output != config.OutputNone {
		if err := layout.Encode(os.Stdout, layouts, cfg.Output); err != nil {
			return fmt.Errorf("writing layouts: %w", err)
		}
	}

	if cfg.Store {
		if err := store(ctx, cfg.Database.DSN(), layouts); err != nil {
			return err
		}
	}

	if cfg.Preview {
		l, ok := firstNonEmpty(layouts)
		if !ok {
			slog.Warn("nothing to preview")
			return nil
		}
		if err := preview.Show(l); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}

	return nil
}

func store(ctx context.Context, dsn string, layouts []layout.Layout) error {
	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	if err := layout.Apply(ctx, db.NewLayoutRepository(database.Pool()), layouts); err != nil {
		return fmt.Errorf("storing layouts: %w", err)
	}
	slog.Info("layouts stored", "count", len(layouts))
	return nil
}

// selectZones returns catalog zones named in ids, in the order given.
// Empty ids selects the whole catalog.
func selectZones(cat *catalog.Catalog, ids string) ([]zone.Description, error) {
	if strings.TrimSpace(ids) == "" {
		return cat.Zones(), nil
	}

	var out []zone.Description
	for id := range strings.SplitSeq(ids, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		d, ok := cat.Get(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownZone, id)
		}
		out = append(out, d)
	}
	return out, nil
}

func firstNonEmpty(layouts []layout.Layout) (layout.Layout, bool) {
	for _, l := range layouts {
		if !l.Empty() {
			return l, true
		}
	}
	return layout.Layout{}, false
}
