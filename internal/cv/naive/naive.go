// Package naive implements multi-round recoloring the obvious way: full
// synchronous sweeps over the whole unsplit ring.
//
// Each round computes every position's new color from its own and its right
// neighbor's pre-round colors, with position len-1 wrapping to position 0.
// This touches the entire ring rounds times, which is exactly the memory
// traffic the chunked engine exists to avoid - but its output defines
// correctness: the parallel engine must be bit-identical to this package.
// It doubles as the cross-check behind the emulator's verify mode.
package naive

import "github.com/kolkov/cvemu/internal/cv/recolor"

// Recolor applies the recoloring step to every position of colors, rounds
// times, in place. Each position's update reads its right neighbor's value
// from before the current round: the sweep runs ascending, so colors[i+1] is
// still old when colors[i] is written, and the wrap pair uses the first
// color saved before the sweep.
//
// Precondition: colors is properly colored (no cyclically-adjacent equals)
// and len(colors) >= 2.
func Recolor(colors []recolor.Color, rounds int) {
	for r := 0; r < rounds; r++ {
		first := colors[0]
		last := len(colors) - 1
		for i := 0; i < last; i++ {
			colors[i] = recolor.Next(colors[i], colors[i+1])
		}
		colors[last] = recolor.Next(colors[last], first)
	}
}
