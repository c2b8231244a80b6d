package layout

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/zoneglow/internal/border"
)

// Encoding formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

type document struct {
	ZoneID      string    `yaml:"zone_id" json:"zone_id"`
	Name        string    `yaml:"name,omitempty" json:"name,omitempty"`
	Shape       string    `yaml:"shape" json:"shape"`
	Spacing     float64   `yaml:"spacing" json:"spacing"`
	Fingerprint string    `yaml:"fingerprint" json:"fingerprint"`
	Summary     Summary   `yaml:"summary" json:"summary"`
	Nodes       []nodeDoc `yaml:"nodes" json:"nodes"`
}

type nodeDoc struct {
	X        float64           `yaml:"x" json:"x"`
	Z        float64           `yaml:"z" json:"z"`
	CellX    int32             `yaml:"cell_x" json:"cell_x"`
	CellZ    int32             `yaml:"cell_z" json:"cell_z"`
	Mask     uint8             `yaml:"mask" json:"mask"`
	Turn     float64           `yaml:"turn" json:"turn"`
	Corner   border.CornerType `yaml:"corner" json:"corner"`
	Rotation int               `yaml:"rotation" json:"rotation"`
}

func toDocument(l Layout) document {
	doc := document{
		ZoneID:      l.ZoneID,
		Name:        l.Name,
		Shape:       l.Shape,
		Spacing:     l.Spacing,
		Fingerprint: l.Fingerprint,
		Summary:     l.Summary(),
		Nodes:       make([]nodeDoc, len(l.Nodes)),
	}
	for i, n := range l.Nodes {
		doc.Nodes[i] = nodeDoc{
			X:        n.Position.X,
			Z:        n.Position.Y,
			CellX:    n.Cell.X,
			CellZ:    n.Cell.Z,
			Mask:     n.NeighborMask,
			Turn:     n.SignedTurn,
			Corner:   n.Corner,
			Rotation: n.Rotation,
		}
	}
	return doc
}

// Encode writes layouts to w as a YAML or JSON list.
func Encode(w io.Writer, layouts []Layout, format string) error {
	docs := make([]document, len(layouts))
	for i, l := range layouts {
		docs[i] = toDocument(l)
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown layout format %q", format)
	}
}
