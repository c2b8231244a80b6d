package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/zoneglow/internal/catalog"
	"github.com/udisondev/zoneglow/internal/layout"
)

const testCatalog = `
zones:
  - id: arena
    shape: Rectangle
    min_x: 0
    max_x: 10
    min_z: 0
    max_z: 10
  - id: pit
    shape: Circle
    center_x: -40.5
    center_z: 12
    radius: 5
  - id: flat
    shape: Box
    min_x: 3
    max_x: 3
    min_z: 0
    max_z: 4
`

func TestSelectZones(t *testing.T) {
	cat, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	tests := []struct {
		name    string
		ids     string
		want    []string
		wantErr error
	}{
		{name: "all", ids: "", want: []string{"arena", "pit", "flat"}},
		{name: "blank", ids: "  ", want: []string{"arena", "pit", "flat"}},
		{name: "given order", ids: "pit, arena", want: []string{"pit", "arena"}},
		{name: "skips empty items", ids: "flat,,", want: []string{"flat"}},
		{name: "unknown", ids: "arena,moon", wantErr: errUnknownZone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectZones(cat, tt.ids)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFirstNonEmpty(t *testing.T) {
	cat, err := catalog.Parse([]byte(testCatalog))
	require.NoError(t, err)

	flat, _ := cat.Get("flat")
	pit, _ := cat.Get("pit")
	layouts := []layout.Layout{layout.Build(flat, 1), layout.Build(pit, 1)}

	l, ok := firstNonEmpty(layouts)
	require.True(t, ok)
	assert.Equal(t, "pit", l.ZoneID)

	_, ok = firstNonEmpty(layouts[:1])
	assert.False(t, ok)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "zones.yaml")
	require.NoError(t, os.WriteFile(catPath, []byte(testCatalog), 0o600))

	t.Setenv("ZONEGLOW_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("ZONEGLOW_CATALOG", catPath)

	require.NoError(t, run(context.Background(), []string{"-output", "none", "-zone", "arena,pit"}))
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	catPath := filepath.Join(dir, "zones.yaml")
	require.NoError(t, os.WriteFile(catPath, []byte(testCatalog), 0o600))

	t.Setenv("ZONEGLOW_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("ZONEGLOW_CATALOG", catPath)

	tests := []struct {
		name string
		args []string
	}{
		{"bad spacing", []string{"-output", "none", "-spacing", "0"}},
		{"bad output", []string{"-output", "xml"}},
		{"unknown zone", []string{"-output", "none", "-zone", "moon"}},
		{"unknown flag", []string{"-frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), tt.args))
		})
	}
}
