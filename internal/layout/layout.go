// Package layout turns zone descriptions into glow tile layouts and hands them
// to tile placers.
package layout

import (
	"seehuhn.de/go/geom/vec"

	"github.com/udisondev/zoneglow/internal/border"
	"github.com/udisondev/zoneglow/internal/geo"
	"github.com/udisondev/zoneglow/internal/zone"
)

// Layout is the border of one zone ready for tile placement.
type Layout struct {
	ZoneID      string
	Name        string
	Shape       string
	Spacing     float64 // requested spacing before clamping
	Nodes       []border.Node
	Fingerprint string
}

// Placement is what a tile placer needs for one tile.
type Placement struct {
	X        float64           `yaml:"x" json:"x"`
	Z        float64           `yaml:"z" json:"z"`
	Corner   border.CornerType `yaml:"corner" json:"corner"`
	Rotation int               `yaml:"rotation" json:"rotation"`
}

// Summary counts nodes per corner type.
type Summary struct {
	Nodes         int `yaml:"nodes" json:"nodes"`
	Cells         int `yaml:"cells" json:"cells"`
	Straight      int `yaml:"straight" json:"straight"`
	OutsideCorner int `yaml:"outside_corner" json:"outside_corner"`
	InsideCorner  int `yaml:"inside_corner" json:"inside_corner"`
	EndCap        int `yaml:"end_cap" json:"end_cap"`
}

// Build generates the layout of a single zone. The zone's own spacing wins
// over defaultSpacing.
func Build(desc zone.Description, defaultSpacing float64) Layout {
	spacing := desc.EffectiveSpacing(defaultSpacing)
	nodes := border.Nodes(&desc, spacing)
	return Layout{
		ZoneID:      desc.ID,
		Name:        desc.Name,
		Shape:       desc.Shape,
		Spacing:     spacing,
		Nodes:       nodes,
		Fingerprint: Fingerprint(nodes),
	}
}

// Empty reports whether the zone produced no border nodes.
func (l Layout) Empty() bool { return len(l.Nodes) == 0 }

// Summary counts the layout's nodes per corner type and distinct cells.
func (l Layout) Summary() Summary {
	s := Summary{Nodes: len(l.Nodes)}
	positions := make([]vec.Vec2, len(l.Nodes))
	for i, n := range l.Nodes {
		positions[i] = n.Position
		switch n.Corner {
		case border.Straight:
			s.Straight++
		case border.OutsideCorner:
			s.OutsideCorner++
		case border.InsideCorner:
			s.InsideCorner++
		case border.EndCap:
			s.EndCap++
		}
	}
	s.Cells = geo.NewCellIndex(positions).Len()
	return s
}

// Placements projects the nodes onto what a tile placer consumes.
func (l Layout) Placements() []Placement {
	out := make([]Placement, len(l.Nodes))
	for i, n := range l.Nodes {
		out[i] = Placement{
			X:        n.Position.X,
			Z:        n.Position.Y,
			Corner:   n.Corner,
			Rotation: n.Rotation,
		}
	}
	return out
}

// Bounds returns the cell range covered by the layout.
// ok is false for an empty layout.
func (l Layout) Bounds() (minCell, maxCell geo.Cell, ok bool) {
	if l.Empty() {
		return geo.Cell{}, geo.Cell{}, false
	}
	minCell, maxCell = l.Nodes[0].Cell, l.Nodes[0].Cell
	for _, n := range l.Nodes[1:] {
		minCell.X = min(minCell.X, n.Cell.X)
		minCell.Z = min(minCell.Z, n.Cell.Z)
		maxCell.X = max(maxCell.X, n.Cell.X)
		maxCell.Z = max(maxCell.Z, n.Cell.Z)
	}
	return minCell, maxCell, true
}
