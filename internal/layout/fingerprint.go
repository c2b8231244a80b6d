package layout

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/udisondev/zoneglow/internal/border"
)

// nodeRecordSize: x, z float64 + rotation uint16 + corner byte.
const nodeRecordSize = 8 + 8 + 2 + 1

// Fingerprint returns a hex blake2b-256 digest of the placement-relevant part
// of nodes. Identical node sequences always produce the same fingerprint.
func Fingerprint(nodes []border.Node) string {
	buf := make([]byte, 0, len(nodes)*nodeRecordSize)
	for _, n := range nodes {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(n.Position.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(n.Position.Y))
		buf = binary.LittleEndian.AppendUint16(buf, uint16(n.Rotation))
		buf = append(buf, byte(n.Corner))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
