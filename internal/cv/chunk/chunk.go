// Package chunk recolors one contiguous slice of the ring for several rounds
// without reading any other slice's live memory.
//
// The trick is a diagonal update schedule. A position is "e-established" when
// it is one application of the recoloring step away from the color it would
// have after e full rounds, with its right neighbor (e-1)-established. The
// three phases below move an establishment wavefront across the slice so that
// every position is completed with full-round fidelity while the slice is
// swept essentially once, instead of rounds times. The only outside data
// needed is a small snapshot of the colors that followed the slice before
// any worker started mutating the ring.
//
// The result is bit-identical to running the naive full-ring sweep rounds
// times; package engine's tests assert exactly that.
package chunk

import (
	"errors"
	"fmt"

	"github.com/kolkov/cvemu/internal/cv/recolor"
)

// ErrShortSlice reports a non-empty slice shorter than the round count. The
// wavefront bound len(colors)-rounds would be negative and the finishing
// phase would walk out of the slice, so such slices are refused outright.
// The engine's worker-count clamping guarantees they never occur; seeing one
// means a partitioning bug.
var ErrShortSlice = errors.New("chunk: slice shorter than round count")

// Recolor advances every position of colors by len(following) rounds, in
// place, using only in-slice data plus the following snapshot.
//
// following must hold the colors that sat immediately after the slice
// (wrapping past the ring's end) before any mutation began, one per round.
// Recolor works on a private copy, so the caller's snapshot is untouched.
//
// An empty slice, or an empty snapshot (zero rounds), is a no-op.
func Recolor(colors, following []recolor.Color) error {
	if len(colors) == 0 || len(following) == 0 {
		return nil
	}
	rounds := len(following)
	if len(colors) < rounds {
		return fmt.Errorf("%w: %d colors, %d rounds", ErrShortSlice, len(colors), rounds)
	}

	// Phase 1, ramp-up: make the head of the slice rounds-established.
	// Round e's sweep must run right to left; left to right would overwrite
	// an "old" value the next pair still needs.
	//
	// Counting how many times each position has been updated, the phase
	// builds a triangle:
	//
	//	0000...
	//	1000...
	//	2100...
	//	3210...
	for e := 1; e < rounds; e++ {
		for i := e; i > 0; i-- {
			colors[i-1] = recolor.Next(colors[i-1], colors[i])
		}
	}

	// Phase 2, wavefront: complete positions left to right. Completing
	// position p touches only positions p..p+rounds, all inside this slice,
	// so the loop stops rounds short of the end. This phase does almost all
	// of the work and sweeps the slice memory only once, which is the whole
	// point of the chunked schedule.
	completableEnd := len(colors) - rounds
	if rounds == 4 {
		// Unrolled for the default round count. The compiler cannot be
		// relied on to unroll the general nested loop, and this loop is
		// where the run spends its time.
		for p := 0; p < completableEnd; p++ {
			colors[p+3] = recolor.Next(colors[p+3], colors[p+4])
			colors[p+2] = recolor.Next(colors[p+2], colors[p+3])
			colors[p+1] = recolor.Next(colors[p+1], colors[p+2])
			colors[p+0] = recolor.Next(colors[p+0], colors[p+1])
		}
	} else {
		for p := 0; p < completableEnd; p++ {
			for i := rounds; i > 0; i-- {
				colors[p+i-1] = recolor.Next(colors[p+i-1], colors[p+i])
			}
		}
	}

	// Phase 3, finishing: the last rounds positions need data past the
	// slice end, supplied by the snapshot acting as virtual extra
	// positions. Each pass advances the unfinished tail and the remaining
	// snapshot by one round; the snapshot's back element has no right
	// neighbor left to advance against and is dropped. Per pass this
	// re-walks the whole tail, which is exactly the memory-hungry behavior
	// phases 1 and 2 confine to a rounds-sized suffix.
	tail := make([]recolor.Color, rounds)
	copy(tail, following)
	last := len(colors) - 1
	for p := last; p >= completableEnd; p-- {
		for q := p; q < last; q++ {
			colors[q] = recolor.Next(colors[q], colors[q+1])
		}
		colors[last] = recolor.Next(colors[last], tail[0])
		for i := 1; i < len(tail); i++ {
			tail[i-1] = recolor.Next(tail[i-1], tail[i])
		}
		tail = tail[:len(tail)-1]
	}
	return nil
}
