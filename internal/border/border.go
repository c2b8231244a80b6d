// Package border samples zone boundaries into closed loops of border nodes.
//
// Each node carries the local geometry a tile placer needs: travel direction in
// and out, occupancy of the 8 surrounding grid cells, a corner classification
// and a rotation snapped to a multiple of 90 degrees. All functions are pure and
// safe for concurrent use.
package border

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/udisondev/zoneglow/internal/geo"
	"github.com/udisondev/zoneglow/internal/zone"
)

// MinSpacing is the smallest sampling step; smaller positive values are raised to it.
const MinSpacing = 0.5

// Node is one sampled border point with its classification.
type Node struct {
	Position     vec.Vec2 // X = world x, Y = world z
	Cell         geo.Cell
	PrevDir      vec.Vec2 // unit direction from the previous node, zero if degenerate
	NextDir      vec.Vec2 // unit direction to the next node, zero if degenerate
	NeighborMask byte
	SignedTurn   float64
	Corner       CornerType
	Rotation     int // 0, 90, 180 or 270
}

// CardinalCount returns the number of occupied E, N, W, S neighbour cells.
func (n Node) CardinalCount() int {
	return geo.CardinalCount(n.NeighborMask)
}

// Nodes samples the zone boundary at roughly spacing intervals and classifies
// every sample. The loop is closed by wraparound; the first point is not repeated.
// A nil zone, non-positive spacing or a degenerate rectangle yield nil.
func Nodes(z *zone.Description, spacing float64) []Node {
	points := samplePoints(z, spacing)
	if len(points) == 0 {
		return nil
	}
	return buildNodes(points)
}

// Points returns only the positions of Nodes(z, spacing).
func Points(z *zone.Description, spacing float64) []vec.Vec2 {
	nodes := Nodes(z, spacing)
	if len(nodes) == 0 {
		return nil
	}
	points := make([]vec.Vec2, len(nodes))
	for i, n := range nodes {
		points[i] = n.Position
	}
	return points
}

func buildNodes(points []vec.Vec2) []Node {
	n := len(points)
	idx := geo.NewCellIndex(points)
	nodes := make([]Node, n)

	for i := range n {
		prev := points[(i-1+n)%n]
		cur := points[i]
		next := points[(i+1)%n]

		prevDir := normalizeSafe(cur.Sub(prev))
		nextDir := normalizeSafe(next.Sub(cur))
		turn := cross(prevDir, nextDir)
		cell := idx.Cell(i)
		mask := idx.NeighborMask(cell)
		corner := classifyCorner(mask, turn, prevDir, nextDir)

		nodes[i] = Node{
			Position:     cur,
			Cell:         cell,
			PrevDir:      prevDir,
			NextDir:      nextDir,
			NeighborMask: mask,
			SignedTurn:   turn,
			Corner:       corner,
			Rotation:     canonicalRotation(prevDir, nextDir, corner),
		}
	}

	return nodes
}

// normalizeSafe возвращает единичный вектор или нулевой для вырожденного входа.
func normalizeSafe(v vec.Vec2) vec.Vec2 {
	lenSq := v.Dot(v)
	if lenSq <= 1e-6 {
		return vec.Vec2{}
	}
	return v.Mul(1 / math.Sqrt(lenSq))
}

// cross returns the z component of the 2D cross product.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
