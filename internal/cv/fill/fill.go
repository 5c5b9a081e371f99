// Package fill produces the initial coloring of the ring.
//
// The only contract that matters downstream is proper coloring: no two
// cyclically-adjacent entries may be equal, including the wraparound pair,
// because the recoloring step is undefined on equal neighbors. Both
// generators here draw pseudo-random words and redraw on collision; the
// redraw budget turns a generator that cannot satisfy the contract into a
// configuration error instead of a silent infinite loop.
//
// Generators are owned values seeded at construction. There is no package
// level PRNG state, so two generators with the same seed produce the same
// ring independently of each other and of call order.
package fill

import (
	"errors"
	"fmt"

	"github.com/kolkov/cvemu/internal/cv/recolor"
	"github.com/kolkov/cvemu/internal/cv/ring"
)

// Pattern selects an initial-color generator strategy. Selection happens
// once at configuration time; there is no per-call dispatch.
type Pattern int

const (
	// MinStd is the classic multiplicative LCG (Lehmer, a=48271, m=2^31-1),
	// the std::minstd_rand parameters.
	MinStd Pattern = iota

	// Xorshift128Plus is the two-word xorshift+ generator.
	Xorshift128Plus
)

// String returns the pattern's configuration-surface name.
func (p Pattern) String() string {
	switch p {
	case MinStd:
		return "minstd"
	case Xorshift128Plus:
		return "xorshift128plus"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// ParsePattern maps a configuration name to a Pattern.
func ParsePattern(name string) (Pattern, error) {
	switch name {
	case "minstd":
		return MinStd, nil
	case "xorshift128plus":
		return Xorshift128Plus, nil
	default:
		return 0, fmt.Errorf("fill: unknown init pattern %q (want minstd or xorshift128plus)", name)
	}
}

// ErrDegenerate reports a generator/seed combination that keeps producing
// colliding adjacent colors. With 64-bit (or 31-bit) draws this takes an
// astronomically unlikely streak, so in practice it flags a broken
// configuration rather than bad luck.
var ErrDegenerate = errors.New("fill: generator cannot satisfy proper coloring")

// redrawBudget bounds collision redraws per position before giving up.
const redrawBudget = 100

// Generator is an owned pseudo-random color source.
type Generator struct {
	pattern Pattern

	// minstd state: current LCG value in 1..2^31-2.
	lcg uint64

	// xorshift128+ state words.
	s0, s1 uint64
}

// New returns a generator of the given pattern seeded deterministically from
// seed. The same (pattern, seed) pair always yields the same color sequence.
func New(pattern Pattern, seed uint64) *Generator {
	g := &Generator{pattern: pattern}
	switch pattern {
	case Xorshift128Plus:
		g.s0 = seed
		g.s1 = 0x8000000080004021
	default:
		// minstd_rand maps a seed congruent to zero to 1, since the
		// multiplicative LCG would otherwise be stuck at zero forever.
		g.lcg = seed % 2147483647
		if g.lcg == 0 {
			g.lcg = 1
		}
	}
	return g
}

// next draws one color.
func (g *Generator) next() recolor.Color {
	if g.pattern == Xorshift128Plus {
		x, y := g.s0, g.s1
		g.s0 = y
		x ^= x << 23
		x ^= x >> 17
		x ^= y ^ (y >> 26)
		g.s1 = x
		return recolor.Color(x + y)
	}
	g.lcg = g.lcg * 48271 % 2147483647
	return recolor.Color(g.lcg)
}

// Fill writes a proper coloring into r: every position gets a fresh draw,
// redrawn while it collides with its left neighbor, and the last position is
// additionally redrawn while it collides with the first (the wraparound
// pair). A position that exhausts its redraw budget fails with
// ErrDegenerate.
func (g *Generator) Fill(r ring.Ring) error {
	if len(r) < 2 {
		return fmt.Errorf("%w: ring of length %d has no proper coloring", ErrDegenerate, len(r))
	}
	r[0] = g.next()
	for i := 1; i < len(r); i++ {
		if err := g.draw(&r[i], r[i-1]); err != nil {
			return err
		}
	}
	last := len(r) - 1
	for attempt := 0; r[last] == r[0]; attempt++ {
		if attempt >= redrawBudget {
			return fmt.Errorf("%w (pattern %s)", ErrDegenerate, g.pattern)
		}
		if err := g.draw(&r[last], r[last-1]); err != nil {
			return err
		}
	}
	return nil
}

// draw stores a fresh color differing from prev into *dst.
func (g *Generator) draw(dst *recolor.Color, prev recolor.Color) error {
	for attempt := 0; ; attempt++ {
		if attempt >= redrawBudget {
			return fmt.Errorf("%w (pattern %s)", ErrDegenerate, g.pattern)
		}
		c := g.next()
		if c != prev {
			*dst = c
			return nil
		}
	}
}
