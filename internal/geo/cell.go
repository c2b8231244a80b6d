package geo

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Cell is an integer placement grid coordinate.
// Z is the world depth axis; it is stored in vec.Vec2.Y on the continuous side.
type Cell struct {
	X, Z int32
}

// CellOf quantizes a continuous position by flooring each axis independently.
func CellOf(p vec.Vec2) Cell {
	return Cell{
		X: int32(math.Floor(p.X / CellSize)),
		Z: int32(math.Floor(p.Y / CellSize)),
	}
}

// Add returns the cell shifted by offset o.
func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Z: c.Z + o.Z}
}

// Key packs the cell into a single 64-bit map key.
// Z goes through uint32 first so negative values never sign-extend into the X half.
func (c Cell) Key() int64 {
	return int64(c.X)<<32 | int64(uint32(c.Z))
}
