package scenario

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/elastic/pkg/collision"
)

// Fingerprint hashes the IEEE-754 bits of the outgoing components.
// Two runs producing the same fingerprint produced bit-identical results.
func Fingerprint(r collision.Result) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(r.Outgoing1.X))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(r.Outgoing1.Y))
	binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(r.Outgoing2.X))
	binary.LittleEndian.PutUint64(buf[24:], math.Float64bits(r.Outgoing2.Y))
	return xxhash.Sum64(buf[:])
}

func formatFingerprint(h uint64) string {
	return fmt.Sprintf("%016x", h)
}
