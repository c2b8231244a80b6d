package border

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/udisondev/zoneglow/internal/geo"
)

// CornerType selects the tile variant placed at a node.
type CornerType uint8

const (
	Straight CornerType = iota
	OutsideCorner
	InsideCorner
	EndCap
)

var cornerNames = [...]string{
	Straight:      "straight",
	OutsideCorner: "outside_corner",
	InsideCorner:  "inside_corner",
	EndCap:        "end_cap",
}

func (c CornerType) String() string {
	if int(c) < len(cornerNames) {
		return cornerNames[c]
	}
	return fmt.Sprintf("CornerType(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c CornerType) MarshalText() ([]byte, error) {
	if int(c) >= len(cornerNames) {
		return nil, fmt.Errorf("marshal corner type: unknown value %d", uint8(c))
	}
	return []byte(cornerNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *CornerType) UnmarshalText(text []byte) error {
	for i, name := range cornerNames {
		if name == string(text) {
			*c = CornerType(i)
			return nil
		}
	}
	return fmt.Errorf("unmarshal corner type: unknown name %q", text)
}

// Classification thresholds.
const (
	straightTurn    = 0.05 // |cross| below this is a straight run
	reversalLenSq   = 0.01 // |prev+next|^2 below this is a reversal
	orthogonalDot   = 0.25 // |dot| at or above this is not a right angle
	degenerateBasis = 0.001
)

// classifyCorner is a flat decision table: too few cardinal neighbours make an
// end cap, shallow or non-orthogonal turns are straight, and right-angle turns
// become inside (left) or outside (right) corners.
func classifyCorner(mask byte, turn float64, prevDir, nextDir vec.Vec2) CornerType {
	if geo.CardinalCount(mask) <= 1 {
		return EndCap
	}

	sum := prevDir.Add(nextDir)
	if math.Abs(turn) < straightTurn || sum.Dot(sum) < reversalLenSq {
		return Straight
	}

	if math.Abs(prevDir.Dot(nextDir)) >= orthogonalDot {
		return Straight
	}

	if turn > 0 {
		return InsideCorner
	}
	return OutsideCorner
}

// canonicalRotation snaps the node orientation to 0, 90, 180 or 270 degrees.
// Straight runs and end caps face along the bisector of both directions,
// corners face along the outgoing direction.
func canonicalRotation(prevDir, nextDir vec.Vec2, corner CornerType) int {
	var basis vec.Vec2
	if corner == Straight || corner == EndCap {
		basis = normalizeSafe(prevDir.Add(nextDir))
	} else {
		basis = normalizeSafe(nextDir)
	}
	if basis.Dot(basis) < degenerateBasis {
		basis = vec.Vec2{X: 1, Y: 0}
	}

	raw := math.Atan2(basis.Y, basis.X) * 180 / math.Pi
	return quantizeAngle90(raw)
}

func quantizeAngle90(deg float64) int {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return int(math.Round(deg/90)) * 90 % 360
}
