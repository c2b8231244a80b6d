package border

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/udisondev/zoneglow/internal/geo"
	"github.com/udisondev/zoneglow/internal/zone"
)

func rectZone(minX, maxX, minZ, maxZ float64) *zone.Description {
	return &zone.Description{Shape: zone.ShapeRectangle, MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ}
}

func circleZone(cx, cz, r float64) *zone.Description {
	return &zone.Description{Shape: zone.ShapeCircle, CenterX: cx, CenterZ: cz, Radius: r}
}

func countCorners(nodes []Node) map[CornerType]int {
	counts := make(map[CornerType]int)
	for _, n := range nodes {
		counts[n.Corner]++
	}
	return counts
}

func TestNodesDegenerateInput(t *testing.T) {
	tests := []struct {
		name    string
		zone    *zone.Description
		spacing float64
	}{
		{"nil zone", nil, 1},
		{"zero spacing", circleZone(0, 0, 5), 0},
		{"negative spacing", rectZone(0, 10, 0, 10), -2},
		{"zero width rectangle", rectZone(3, 3, 0, 10), 1},
		{"zero depth box", &zone.Description{Shape: "box", MinX: 0, MaxX: 10, MinZ: 4, MaxZ: 4}, 1},
		{"zero width rectangle with radius", &zone.Description{Shape: "Rect", MinX: 2, MaxX: 2, MinZ: -1, MaxZ: 5, Radius: 8}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Nodes(tt.zone, tt.spacing))
			assert.Empty(t, Points(tt.zone, tt.spacing))
		})
	}
}

func TestRectanglePointCount(t *testing.T) {
	tests := []struct {
		name    string
		zone    *zone.Description
		spacing float64
		want    int
	}{
		{"10x10 spacing 1", rectZone(0, 10, 0, 10), 1, 40},
		{"10x10 spacing 2", rectZone(0, 10, 0, 10), 2, 20},
		{"10x3 spacing 4", rectZone(0, 10, 0, 3), 4, 2 + 1 + 2 + 1},
		{"negative coordinates", rectZone(-3, 3, -2, 2), 1, 6 + 4 + 6 + 4},
		{"4x6 spacing 0.5", rectZone(0, 4, 0, 6), 0.5, 8 + 12 + 8 + 12},
		{"spacing below floor is clamped", rectZone(0, 4, 0, 6), 0.1, 8 + 12 + 8 + 12},
		{"radius square fallback", &zone.Description{Shape: zone.ShapeSquare, CenterX: 5, CenterZ: 5}, 1, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := Nodes(tt.zone, tt.spacing)
			require.Len(t, nodes, tt.want)

			seen := make(map[vec.Vec2]bool, len(nodes))
			for _, n := range nodes {
				assert.False(t, seen[n.Position], "duplicate point %v", n.Position)
				seen[n.Position] = true
			}
		})
	}
}

func TestRectangleTraversalOrder(t *testing.T) {
	points := Points(rectZone(0, 10, 0, 10), 1)
	require.Len(t, points, 40)

	assert.Equal(t, vec.Vec2{X: 0, Y: 0}, points[0])
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, points[10])
	assert.Equal(t, vec.Vec2{X: 10, Y: 10}, points[20])
	assert.Equal(t, vec.Vec2{X: 0, Y: 10}, points[30])
	assert.Equal(t, vec.Vec2{X: 0, Y: 1}, points[39], "loop must not repeat the first corner")
}

func TestRectangleClassification(t *testing.T) {
	nodes := Nodes(rectZone(0, 10, 0, 10), 1)
	require.Len(t, nodes, 40)

	counts := countCorners(nodes)
	assert.Equal(t, 36, counts[Straight])
	assert.Equal(t, 4, counts[InsideCorner])

	corners := []struct {
		index    int
		mask     byte
		rotation int
	}{
		{0, geo.DirEast | geo.DirNorth, 0},
		{10, geo.DirNorth | geo.DirWest, 90},
		{20, geo.DirWest | geo.DirSouth, 180},
		{30, geo.DirEast | geo.DirSouth, 270},
	}
	for _, c := range corners {
		n := nodes[c.index]
		assert.Equal(t, InsideCorner, n.Corner, "node %d", c.index)
		assert.Equal(t, c.mask, n.NeighborMask, "node %d", c.index)
		assert.Equal(t, c.rotation, n.Rotation, "node %d", c.index)
		assert.InDelta(t, 1.0, n.SignedTurn, 1e-9, "node %d", c.index)
	}

	mid := nodes[5]
	assert.Equal(t, Straight, mid.Corner)
	assert.Equal(t, geo.Cell{X: 5, Z: 0}, mid.Cell)
	assert.Equal(t, 2, mid.CardinalCount())
	assert.Equal(t, 0, mid.Rotation)
	assert.InDelta(t, 0.0, mid.SignedTurn, 1e-12)

	assert.Equal(t, 90, nodes[15].Rotation)
	assert.Equal(t, 180, nodes[25].Rotation)
	assert.Equal(t, 270, nodes[35].Rotation)
}

func TestRectangleNegativeCoordinates(t *testing.T) {
	nodes := Nodes(rectZone(-3, 3, -2, 2), 1)
	require.Len(t, nodes, 20)

	counts := countCorners(nodes)
	assert.Equal(t, 16, counts[Straight])
	assert.Equal(t, 4, counts[InsideCorner])
	assert.Equal(t, geo.Cell{X: -3, Z: -2}, nodes[0].Cell)
}

// Шаг 2 при клетке 1.0 оставляет точки без кардинальных соседей.
func TestSparseRectangleIsAllEndCaps(t *testing.T) {
	nodes := Nodes(rectZone(0, 10, 0, 10), 2)
	require.Len(t, nodes, 20)

	for i, n := range nodes {
		assert.Equal(t, EndCap, n.Corner, "node %d", i)
		assert.Equal(t, 0, n.CardinalCount(), "node %d", i)
	}
}

func TestCirclePointCount(t *testing.T) {
	tests := []struct {
		name    string
		zone    *zone.Description
		spacing float64
		want    int
	}{
		{"radius 5 spacing 1", circleZone(0, 0, 5), 1, 31},
		{"radius 20 spacing 1", circleZone(0, 0, 20), 1, 125},
		{"radius 5 spacing 2", circleZone(12, -7, 5), 2, 15},
		{"tiny circle keeps eight steps", circleZone(0, 0, 0.1), 1, 8},
		{"non-positive radius raised to one", circleZone(0, 0, -3), 0.5, 12},
		{"unknown shape uses circle path", &zone.Description{Shape: "Hexagon", Radius: 5}, 1, 31},
		{"empty shape uses circle path", &zone.Description{Radius: 5}, 1, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Nodes(tt.zone, tt.spacing), tt.want)
		})
	}
}

func TestCircleSamplesLieOnRing(t *testing.T) {
	z := circleZone(100.5, -40.5, 5)
	points := Points(z, 1)
	require.Len(t, points, 31)

	assert.InDelta(t, 105.5, points[0].X, 1e-9, "sampling starts at angle 0")
	assert.InDelta(t, -40.5, points[0].Y, 1e-9)
	for _, p := range points {
		d := p.Sub(vec.Vec2{X: z.CenterX, Y: z.CenterZ}).Length()
		assert.InDelta(t, 5.0, d, 1e-9)
	}
}

func TestCircleHasNoCorners(t *testing.T) {
	for _, z := range []*zone.Description{
		circleZone(0, 0, 5),
		circleZone(100.5, -40.5, 5),
		circleZone(0, 0, 20),
		circleZone(3, 3, 0.5),
	} {
		nodes := Nodes(z, 1)
		require.NotEmpty(t, nodes)

		counts := countCorners(nodes)
		assert.Zero(t, counts[InsideCorner])
		assert.Zero(t, counts[OutsideCorner])
		assert.Equal(t, len(nodes), counts[Straight]+counts[EndCap])
	}
}

func TestNodeInvariants(t *testing.T) {
	zones := []struct {
		zone    *zone.Description
		spacing float64
	}{
		{rectZone(0, 10, 0, 10), 1},
		{rectZone(0, 10, 0, 10), 2},
		{rectZone(-3, 3, -2, 2), 1},
		{rectZone(0, 4, 0, 6), 0.5},
		{rectZone(-7.3, 12.9, 4.4, 9.1), 0.7},
		{circleZone(0, 0, 5), 1},
		{circleZone(-13.2, 8.7, 9), 0.5},
		{circleZone(0, 0, 40), 3},
	}

	for _, tt := range zones {
		nodes := Nodes(tt.zone, tt.spacing)
		require.NotEmpty(t, nodes)
		n := len(nodes)

		occupied := make(map[geo.Cell]bool, n)
		for _, node := range nodes {
			occupied[geo.CellOf(node.Position)] = true
		}

		for i, node := range nodes {
			assert.Contains(t, []int{0, 90, 180, 270}, node.Rotation)
			assert.Equal(t, geo.CellOf(node.Position), node.Cell)

			if node.Corner == EndCap {
				assert.LessOrEqual(t, node.CardinalCount(), 1)
			} else {
				assert.Greater(t, node.CardinalCount(), 1)
			}

			for k, off := range geo.Offsets {
				set := node.NeighborMask&(1<<k) != 0
				assert.Equal(t, occupied[node.Cell.Add(off)], set, "node %d bit %d", i, k)
			}

			next := nodes[(i+1)%n]
			prev := nodes[(i-1+n)%n]
			want := normalizeSafe(next.Position.Sub(node.Position))
			assert.InDelta(t, want.X, node.NextDir.X, 1e-12)
			assert.InDelta(t, want.Y, node.NextDir.Y, 1e-12)
			assert.Equal(t, prev.NextDir, node.PrevDir, "loop must wrap at node %d", i)
			assert.InDelta(t, cross(node.PrevDir, node.NextDir), node.SignedTurn, 1e-12)
		}
	}
}

func TestNodesDeterministic(t *testing.T) {
	for _, z := range []*zone.Description{rectZone(-7.3, 12.9, 4.4, 9.1), circleZone(-13.2, 8.7, 9)} {
		assert.Equal(t, Nodes(z, 0.7), Nodes(z, 0.7))
	}
}

func TestPointsMatchNodes(t *testing.T) {
	z := circleZone(1, 2, 6)
	nodes := Nodes(z, 1.5)
	points := Points(z, 1.5)
	require.Len(t, points, len(nodes))
	for i := range nodes {
		assert.Equal(t, nodes[i].Position, points[i])
	}
}

func TestRingPoints(t *testing.T) {
	center := Point3{X: 10, Y: 64, Z: -20}

	assert.Empty(t, RingPoints(center, 0, 1, 0))
	assert.Empty(t, RingPoints(center, -1, 1, 0))
	assert.Empty(t, RingPoints(center, 5, 0, 0))
	assert.Empty(t, RingPoints(center, 5, -1, 0))

	ring := RingPoints(center, 5, 1, 90)
	require.Len(t, ring, 31)
	assert.InDelta(t, 10.0, ring[0].X, 1e-9)
	assert.InDelta(t, -15.0, ring[0].Z, 1e-9)
	for _, p := range ring {
		assert.Equal(t, 64.0, p.Y)
		assert.InDelta(t, 5.0, math.Hypot(p.X-center.X, p.Z-center.Z), 1e-9)
	}

	// Без зажима шага и без минимума в восемь точек.
	assert.Len(t, RingPoints(center, 0.1, 1, 0), 1)
	assert.Len(t, RingPoints(center, 1, 0.1, 0), 62)
}
