package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/zoneglow/internal/border"
	"github.com/udisondev/zoneglow/internal/layout"
)

// ErrLayoutNotFound is returned when no layout is stored for a zone.
var ErrLayoutNotFound = errors.New("layout not found")

var _ layout.Placer = (*LayoutRepository)(nil)

var nodeColumns = []string{"zone_id", "seq", "x", "z", "cell_x", "cell_z", "mask", "corner", "rotation"}

// LayoutRepository persists border layouts per zone.
type LayoutRepository struct {
	db *pgxpool.Pool
}

// NewLayoutRepository creates a new LayoutRepository.
func NewLayoutRepository(db *pgxpool.Pool) *LayoutRepository {
	return &LayoutRepository{db: db}
}

// Save replaces the stored layout of l.ZoneID in one transaction.
// It returns false without writing when the stored fingerprint already matches.
func (r *LayoutRepository) Save(ctx context.Context, l layout.Layout) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	var stored string
	err = tx.QueryRow(ctx,
		`SELECT fingerprint FROM border_layouts WHERE zone_id = $1 FOR UPDATE`, l.ZoneID,
	).Scan(&stored)
	switch {
	case err == nil:
		if stored == l.Fingerprint {
			return false, nil
		}
	case errors.Is(err, pgx.ErrNoRows):
	default:
		return false, fmt.Errorf("querying fingerprint of zone %q: %w", l.ZoneID, err)
	}

	upsert := `
		INSERT INTO border_layouts (zone_id, name, shape, spacing, fingerprint, node_count, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (zone_id) DO UPDATE SET
			name = EXCLUDED.name,
			shape = EXCLUDED.shape,
			spacing = EXCLUDED.spacing,
			fingerprint = EXCLUDED.fingerprint,
			node_count = EXCLUDED.node_count,
			updated_at = now()
	`
	if _, err := tx.Exec(ctx, upsert, l.ZoneID, l.Name, l.Shape, l.Spacing, l.Fingerprint, len(l.Nodes)); err != nil {
		return false, fmt.Errorf("upserting layout of zone %q: %w", l.ZoneID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM border_nodes WHERE zone_id = $1`, l.ZoneID); err != nil {
		return false, fmt.Errorf("deleting nodes of zone %q: %w", l.ZoneID, err)
	}

	rows := make([][]any, len(l.Nodes))
	for i, n := range l.Nodes {
		rows[i] = []any{
			l.ZoneID, i, n.Position.X, n.Position.Y, n.Cell.X, n.Cell.Z,
			int16(n.NeighborMask), n.Corner.String(), int16(n.Rotation),
		}
	}
	if _, err := tx.CopyFrom(ctx, pgx.Identifier{"border_nodes"}, nodeColumns, pgx.CopyFromRows(rows)); err != nil {
		return false, fmt.Errorf("copying nodes of zone %q: %w", l.ZoneID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("committing layout of zone %q: %w", l.ZoneID, err)
	}
	return true, nil
}

// Place implements layout.Placer.
func (r *LayoutRepository) Place(ctx context.Context, l layout.Layout) error {
	changed, err := r.Save(ctx, l)
	if err != nil {
		return err
	}
	if changed {
		slog.Info("layout stored", "zone", l.ZoneID, "nodes", len(l.Nodes), "fingerprint", l.Fingerprint)
	} else {
		slog.Debug("layout unchanged", "zone", l.ZoneID)
	}
	return nil
}

// Fingerprint returns the fingerprint of the stored layout.
func (r *LayoutRepository) Fingerprint(ctx context.Context, zoneID string) (string, error) {
	var fp string
	err := r.db.QueryRow(ctx,
		`SELECT fingerprint FROM border_layouts WHERE zone_id = $1`, zoneID,
	).Scan(&fp)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("zone %q: %w", zoneID, ErrLayoutNotFound)
		}
		return "", fmt.Errorf("querying fingerprint of zone %q: %w", zoneID, err)
	}
	return fp, nil
}

// Load returns the stored placements of a zone in border order.
func (r *LayoutRepository) Load(ctx context.Context, zoneID string) ([]layout.Placement, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT node_count FROM border_layouts WHERE zone_id = $1`, zoneID,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone %q: %w", zoneID, ErrLayoutNotFound)
		}
		return nil, fmt.Errorf("querying layout of zone %q: %w", zoneID, err)
	}

	query := `
		SELECT x, z, corner, rotation
		FROM border_nodes
		WHERE zone_id = $1
		ORDER BY seq
	`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("querying nodes of zone %q: %w", zoneID, err)
	}
	defer rows.Close()

	placements := make([]layout.Placement, 0, count)
	for rows.Next() {
		var (
			p      layout.Placement
			corner string
			rot    int16
		)
		if err := rows.Scan(&p.X, &p.Z, &corner, &rot); err != nil {
			return nil, fmt.Errorf("scanning node row: %w", err)
		}
		var c border.CornerType
		if err := c.UnmarshalText([]byte(corner)); err != nil {
			return nil, fmt.Errorf("zone %q: %w", zoneID, err)
		}
		p.Corner = c
		p.Rotation = int(rot)
		placements = append(placements, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating node rows: %w", err)
	}

	return placements, nil
}

// Delete removes the stored layout of a zone together with its nodes.
func (r *LayoutRepository) Delete(ctx context.Context, zoneID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM border_layouts WHERE zone_id = $1`, zoneID)
	if err != nil {
		return fmt.Errorf("deleting layout of zone %q: %w", zoneID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("zone %q: %w", zoneID, ErrLayoutNotFound)
	}
	return nil
}
