package trace

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/sm83/internal/cpu"
)

// Digest returns a hash of the architectural state in s. The clock is
// left out, so that runs reaching the same state by different paths
// compare equal.
func Digest(s cpu.Snapshot) uint64 {
	var buf [14]byte
	copy(buf[:8], []byte{s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L})
	binary.LittleEndian.PutUint16(buf[8:], s.SP)
	binary.LittleEndian.PutUint16(buf[10:], s.PC)
	if s.IME {
		buf[12] = 1
	}
	if s.Halted {
		buf[13] = 1
	}
	return xxhash.Sum64(buf[:])
}
