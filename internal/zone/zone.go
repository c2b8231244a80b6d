// Package zone describes arena zone boundaries and resolves them into concrete
// rectangle bounds or a circle fallback.
package zone

import (
	"math"
	"strings"
)

// Shape tags accepted in zone descriptions. Matching is case-insensitive.
const (
	ShapeCircle    = "Circle"
	ShapeRectangle = "Rectangle"
	ShapeRect      = "Rect"
	ShapeSquare    = "Square"
	ShapeBox       = "Box"
)

// boundsEpsilon is the tolerance under which a bound counts as unset.
const boundsEpsilon = 0.001

var rectLikeShapes = []string{ShapeRectangle, ShapeRect, ShapeSquare, ShapeBox}

// IsRectLike reports whether shape names a rectangle-like zone.
func IsRectLike(shape string) bool {
	shape = strings.TrimSpace(shape)
	for _, s := range rectLikeShapes {
		if strings.EqualFold(shape, s) {
			return true
		}
	}
	return false
}

// Description is an immutable zone boundary as authored in the zone catalog.
// ID, Name and Spacing are catalog metadata and do not affect the geometry.
type Description struct {
	ID      string  `yaml:"id" json:"id"`
	Name    string  `yaml:"name,omitempty" json:"name,omitempty"`
	Shape   string  `yaml:"shape" json:"shape"`
	CenterX float64 `yaml:"center_x" json:"center_x"`
	CenterZ float64 `yaml:"center_z" json:"center_z"`
	Radius  float64 `yaml:"radius" json:"radius"`
	MinX    float64 `yaml:"min_x,omitempty" json:"min_x,omitempty"`
	MaxX    float64 `yaml:"max_x,omitempty" json:"max_x,omitempty"`
	MinZ    float64 `yaml:"min_z,omitempty" json:"min_z,omitempty"`
	MaxZ    float64 `yaml:"max_z,omitempty" json:"max_z,omitempty"`
	Spacing float64 `yaml:"spacing,omitempty" json:"spacing,omitempty"`
}

// Bounds is an axis-aligned rectangle on the XZ plane.
type Bounds struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// Width returns the X extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Depth returns the Z extent.
func (b Bounds) Depth() float64 { return b.MaxZ - b.MinZ }

// Valid reports whether both extents are positive.
func (b Bounds) Valid() bool { return b.Width() > 0 && b.Depth() > 0 }

// HasExplicitBounds reports whether at least one bound field is set.
func (d *Description) HasExplicitBounds() bool {
	return !(math.Abs(d.MinX) < boundsEpsilon &&
		math.Abs(d.MaxX) < boundsEpsilon &&
		math.Abs(d.MinZ) < boundsEpsilon &&
		math.Abs(d.MaxZ) < boundsEpsilon)
}

// IsCircle reports whether the zone is sampled as a circle.
// Any shape that is not rectangle-like, including an empty one, is a circle.
func (d *Description) IsCircle() bool {
	return !IsRectLike(d.Shape)
}

// RectBounds resolves a rectangle-like zone into concrete bounds.
// Explicit bounds are normalized so min <= max; without them a square of
// half-width max(1, Radius) around the center is used.
// ok is false for non rectangle-like shapes and for rectangles whose width
// or depth is not positive.
func (d *Description) RectBounds() (b Bounds, ok bool) {
	if !IsRectLike(d.Shape) {
		return Bounds{}, false
	}

	if d.HasExplicitBounds() {
		b = Bounds{
			MinX: min(d.MinX, d.MaxX),
			MaxX: max(d.MinX, d.MaxX),
			MinZ: min(d.MinZ, d.MaxZ),
			MaxZ: max(d.MinZ, d.MaxZ),
		}
	} else {
		half := max(1, d.Radius)
		b = Bounds{
			MinX: d.CenterX - half,
			MaxX: d.CenterX + half,
			MinZ: d.CenterZ - half,
			MaxZ: d.CenterZ + half,
		}
	}

	return b, b.Valid()
}

// CircleRadius returns the radius used by the circle path, never below 1.
func (d *Description) CircleRadius() float64 {
	return max(1, d.Radius)
}

// EffectiveSpacing returns the zone's own spacing when set, otherwise def.
func (d *Description) EffectiveSpacing(def float64) float64 {
	if d.Spacing > 0 {
		return d.Spacing
	}
	return def
}
