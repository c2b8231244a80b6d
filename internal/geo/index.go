package geo

import (
	"math/bits"

	"seehuhn.de/go/geom/vec"
)

// CellIndex maps occupied cells to the index of the point occupying them.
// When several points fall into one cell the last one wins.
type CellIndex struct {
	byKey map[int64]int
	cells []Cell
}

// NewCellIndex quantizes points in order and indexes every resulting cell.
func NewCellIndex(points []vec.Vec2) *CellIndex {
	idx := &CellIndex{
		byKey: make(map[int64]int, len(points)),
		cells: make([]Cell, len(points)),
	}
	for i, p := range points {
		c := CellOf(p)
		idx.cells[i] = c
		idx.byKey[c.Key()] = i
	}
	return idx
}

// Cell returns the quantized cell of point i.
func (idx *CellIndex) Cell(i int) Cell { return idx.cells[i] }

// Len returns the number of distinct occupied cells.
func (idx *CellIndex) Len() int { return len(idx.byKey) }

// Has reports whether any point quantized into c.
func (idx *CellIndex) Has(c Cell) bool {
	_, ok := idx.lookup(c)
	return ok
}

// lookup returns the index of the last point that quantized into c.
func (idx *CellIndex) lookup(c Cell) (int, bool) {
	i, ok := idx.byKey[c.Key()]
	return i, ok
}

// HasNeighbor reports whether the cell next to center in direction dir is occupied.
// dir must be a single Dir* bit; anything else reports false.
func (idx *CellIndex) HasNeighbor(center Cell, dir byte) bool {
	if bits.OnesCount8(dir) != 1 {
		return false
	}
	return idx.Has(center.Add(Offsets[bits.TrailingZeros8(dir)]))
}

// NeighborMask returns the 8-bit occupancy mask of the cells surrounding center.
func (idx *CellIndex) NeighborMask(center Cell) byte {
	var mask byte
	for k := range Offsets {
		dir := byte(1) << k
		if idx.HasNeighbor(center, dir) {
			mask |= dir
		}
	}
	return mask
}

// CardinalCount returns how many of E, N, W, S are set in mask.
func CardinalCount(mask byte) int {
	return bits.OnesCount8(mask & DirCardinal)
}
