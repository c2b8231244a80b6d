package border

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/udisondev/zoneglow/internal/zone"
)

// minCircleSteps keeps tiny circles recognisable as rings.
const minCircleSteps = 8

// samplePoints resolves the zone shape and walks its boundary.
func samplePoints(z *zone.Description, spacing float64) []vec.Vec2 {
	if z == nil || spacing <= 0 {
		return nil
	}
	spacing = max(MinSpacing, spacing)

	if z.IsCircle() {
		return circlePoints(z, spacing)
	}

	// Вырожденный прямоугольник не превращается в круг.
	b, ok := z.RectBounds()
	if !ok {
		return nil
	}
	return rectanglePoints(b, spacing)
}

// rectanglePoints walks bottom-left, bottom-right, top-right, top-left.
// Each edge drops its endpoint so every corner appears exactly once.
func rectanglePoints(b zone.Bounds, spacing float64) []vec.Vec2 {
	width, depth := b.Width(), b.Depth()
	if width <= 0 || depth <= 0 {
		return nil
	}

	points := make([]vec.Vec2, 0, edgeSteps(width, spacing)*2+edgeSteps(depth, spacing)*2)
	addEdge := func(start, dir vec.Vec2, length float64) {
		steps := edgeSteps(length, spacing)
		for i := range steps {
			offset := length * float64(i) / float64(steps)
			points = append(points, start.Add(dir.Mul(offset)))
		}
	}

	addEdge(vec.Vec2{X: b.MinX, Y: b.MinZ}, vec.Vec2{X: 1, Y: 0}, width)
	addEdge(vec.Vec2{X: b.MaxX, Y: b.MinZ}, vec.Vec2{X: 0, Y: 1}, depth)
	addEdge(vec.Vec2{X: b.MaxX, Y: b.MaxZ}, vec.Vec2{X: -1, Y: 0}, width)
	addEdge(vec.Vec2{X: b.MinX, Y: b.MaxZ}, vec.Vec2{X: 0, Y: -1}, depth)

	return points
}

func edgeSteps(length, spacing float64) int {
	return max(1, int(length/spacing))
}

// circlePoints samples the zone circle counter-clockwise starting at angle 0.
func circlePoints(z *zone.Description, spacing float64) []vec.Vec2 {
	radius := z.CircleRadius()
	stepCount := max(minCircleSteps, int(2*math.Pi*radius/spacing))
	step := 2 * math.Pi / float64(stepCount)

	points := make([]vec.Vec2, stepCount)
	for i := range stepCount {
		angle := float64(i) * step
		points[i] = vec.Vec2{
			X: z.CenterX + radius*math.Cos(angle),
			Y: z.CenterZ + radius*math.Sin(angle),
		}
	}
	return points
}

// Point3 is a world position; Y is height.
type Point3 struct {
	X, Y, Z float64
}

// RingPoints returns a free-floating ring of points around center at height
// center.Y, rotated by startAngleDegrees. Unlike Nodes it neither clamps the
// spacing nor classifies the points. Non-positive radius or spacing yield nil.
func RingPoints(center Point3, radius, spacing, startAngleDegrees float64) []Point3 {
	if radius <= 0 || spacing <= 0 {
		return nil
	}

	stepCount := max(1, int(2*math.Pi*radius/spacing))
	start := startAngleDegrees * math.Pi / 180
	step := 2 * math.Pi / float64(stepCount)

	points := make([]Point3, stepCount)
	for i := range stepCount {
		angle := start + float64(i)*step
		points[i] = Point3{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y,
			Z: center.Z + radius*math.Sin(angle),
		}
	}
	return points
}
