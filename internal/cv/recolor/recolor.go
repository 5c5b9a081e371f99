// Package recolor implements the Cole-Vishkin recoloring step.
//
// One step maps a position's color a and its right neighbor's color b to a
// much smaller color:
//   - Bit 0: the value of a's bit at the lowest position where a and b differ
//   - Bits 1+: the index of that position
//
// Starting from a proper coloring (no two adjacent colors equal), repeated
// application shrinks colors from w bits to roughly log2(w)+1 bits per round
// while keeping the coloring proper. This encoding is why the whole emulator
// works: the step needs only the two colors being compared, no global data.
package recolor

import "math/bits"

// Color is one entry of the ring. 64 bits so that the initial random coloring
// can use the full word width; after a few rounds values fit in a byte.
type Color uint64

// Next computes the new color for a position holding a whose right neighbor
// holds b.
//
// This is the CRITICAL HOT PATH function - it runs rounds*length times per
// emulation. It must stay allocation-free and inline-friendly: an XOR, a
// trailing-zero count, a shift and two ORs.
//
// Precondition: a != b. Equal neighbors mean the proper-coloring invariant
// was already broken upstream (bad generator, bad seed, or a partitioning
// bug); continuing would silently corrupt every later round, so Next panics
// instead of returning a recoverable error.
func Next(a, b Color) Color {
	x := a ^ b
	if x == 0 {
		panic("recolor: adjacent colors equal, proper-coloring invariant broken upstream")
	}
	k := uint(bits.TrailingZeros64(uint64(x)))
	bit := (a >> k) & 1
	return bit | Color(k)<<1
}
