// Package ring holds the cyclic color sequence being recolored.
//
// A Ring is an owned, fixed-length slice of colors with wraparound adjacency:
// position len-1 is adjacent to position 0. The driver allocates it once per
// run; during the parallel recoloring step workers hold exclusive mutable
// access to disjoint contiguous index ranges of it.
package ring

import (
	"errors"
	"fmt"

	"github.com/kolkov/cvemu/internal/cv/recolor"
)

// MaxLength caps the ring size. Beyond 1<<31 entries the raw buffer alone is
// 16 GiB; the original tool rejects this outright and so do we.
const MaxLength = 1 << 31

// ErrLength reports a ring length the allocator guard refuses.
//
// Go's runtime aborts rather than failing recoverably on a hopeless
// allocation, so the pre-allocation size check is the distinct
// "allocation failure" error kind the caller sees.
var ErrLength = errors.New("ring: length out of range")

// Ring is the cyclic sequence of colors.
type Ring []recolor.Color

// New allocates a zeroed ring of the given length.
//
// Lengths below 2 are rejected: a single position is cyclically adjacent to
// itself, so no proper coloring of it exists and the recoloring step would be
// undefined. Lengths above MaxLength are rejected before any allocation is
// attempted, so a refused run never partially executes.
func New(length int) (Ring, error) {
	if length < 2 || length > MaxLength {
		return nil, fmt.Errorf("%w: %d (want 2..%d)", ErrLength, length, MaxLength)
	}
	return make(Ring, length), nil
}

// Clone returns an independent copy of the ring.
func (r Ring) Clone() Ring {
	out := make(Ring, len(r))
	copy(out, r)
	return out
}

// ProperlyColored reports whether no two cyclically-adjacent positions hold
// equal colors. This is the precondition of every recoloring round and is
// preserved by each round.
func (r Ring) ProperlyColored() bool {
	if len(r) < 2 {
		return false
	}
	for i := 0; i+1 < len(r); i++ {
		if r[i] == r[i+1] {
			return false
		}
	}
	return r[len(r)-1] != r[0]
}

// Narrow returns the lossy one-byte-per-color view used by the binary writer.
// After four or more rounds every color fits in well under a byte, so the
// truncation loses nothing in the common case.
func (r Ring) Narrow() []byte {
	out := make([]byte, len(r))
	for i, c := range r {
		out[i] = byte(c)
	}
	return out
}
