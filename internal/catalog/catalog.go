// Package catalog loads arena zone descriptions from YAML.
package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/zoneglow/internal/zone"
)

var (
	// ErrEmptyID is returned for a zone without an id.
	ErrEmptyID = errors.New("zone id is empty")
	// ErrDuplicateID is returned when two zones share an id.
	ErrDuplicateID = errors.New("duplicate zone id")
)

type file struct {
	Zones []zone.Description `yaml:"zones"`
}

// Catalog holds zone descriptions in file order with lookup by id.
type Catalog struct {
	zones []zone.Description
	byID  map[string]int
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}

	slog.Info("loaded zones", "path", path, "count", c.Len())
	return c, nil
}

// Parse decodes catalog YAML. Ids are trimmed and must be unique.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	c := &Catalog{
		zones: make([]zone.Description, 0, len(f.Zones)),
		byID:  make(map[string]int, len(f.Zones)),
	}
	for i, z := range f.Zones {
		z.ID = strings.TrimSpace(z.ID)
		if z.ID == "" {
			return nil, fmt.Errorf("zone #%d: %w", i, ErrEmptyID)
		}
		if _, ok := c.byID[z.ID]; ok {
			return nil, fmt.Errorf("zone %q: %w", z.ID, ErrDuplicateID)
		}
		if z.Shape == "" {
			slog.Debug("zone without shape, using circle", "id", z.ID)
		}
		c.byID[z.ID] = len(c.zones)
		c.zones = append(c.zones, z)
	}

	return c, nil
}

// Zones returns a copy of all zone descriptions in file order.
func (c *Catalog) Zones() []zone.Description {
	out := make([]zone.Description, len(c.zones))
	copy(out, c.zones)
	return out
}

// Get returns the zone with the given id.
func (c *Catalog) Get(id string) (zone.Description, bool) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return zone.Description{}, false
	}
	return c.zones[i], true
}

// Len returns the number of zones.
func (c *Catalog) Len() int { return len(c.zones) }
