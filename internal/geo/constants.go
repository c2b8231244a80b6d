// Package geo quantizes continuous border positions onto the unit placement grid
// and answers 8-neighbour occupancy queries over the quantized cells.
package geo

// CellSize is the edge length of one placement grid cell in world units.
// Sampling density never changes it.
const CellSize = 1.0

// Direction bitmask constants.
// 8-bit mask, one bit per neighbouring cell, counter-clockwise from east.
const (
	DirEast      byte = 1 << 0 // 0x01
	DirNorthEast byte = 1 << 1 // 0x02
	DirNorth     byte = 1 << 2 // 0x04
	DirNorthWest byte = 1 << 3 // 0x08
	DirWest      byte = 1 << 4 // 0x10
	DirSouthWest byte = 1 << 5 // 0x20
	DirSouth     byte = 1 << 6 // 0x40
	DirSouthEast byte = 1 << 7 // 0x80
)

// Composite direction masks.
const (
	DirCardinal = DirEast | DirNorth | DirWest | DirSouth                     // 0x55
	DirDiagonal = DirNorthEast | DirNorthWest | DirSouthWest | DirSouthEast // 0xAA
)

// Offsets holds the cell offset for each direction bit; Offsets[k] belongs to bit 1<<k.
var Offsets = [8]Cell{
	{X: 1, Z: 0},   // E
	{X: 1, Z: 1},   // NE
	{X: 0, Z: 1},   // N
	{X: -1, Z: 1},  // NW
	{X: -1, Z: 0},  // W
	{X: -1, Z: -1}, // SW
	{X: 0, Z: -1},  // S
	{X: 1, Z: -1},  // SE
}
