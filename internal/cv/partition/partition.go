// Package partition splits the ring into per-worker slices and captures each
// slice's following-snapshot.
//
// Capturing every snapshot before any worker starts is the device that makes
// the recoloring step lock-free: the only cross-slice data a worker ever
// needs is the pre-run value of its neighbor's first rounds positions, and
// once those are copied by value the workers share nothing mutable.
package partition

import (
	"errors"
	"fmt"

	"github.com/kolkov/cvemu/internal/cv/recolor"
)

// ErrBoundaries reports a non-monotonic boundary sequence. The floor formula
// cannot produce one; seeing this error means an internal arithmetic fault,
// and callers treat it as fatal.
var ErrBoundaries = errors.New("partition: boundaries not monotonic")

// Plan describes one run's partitioning: worker count + 1 monotonic boundary
// indices and one following-snapshot per slice.
type Plan struct {
	// Boundaries holds workers+1 indices; slice i is the half-open range
	// [Boundaries[i], Boundaries[i+1]). Together the slices cover the ring
	// exactly once.
	Boundaries []int

	// Following holds one snapshot per slice: the rounds colors that sat at
	// the slice's end, end+1, ... (wrapping to index 0) when New ran.
	Following [][]recolor.Color
}

// Boundaries computes the workers+1 slice boundaries for a ring of the given
// length: boundary i is floor(length*i/workers). The remainder of the
// division concentrates in the last slice.
func Boundaries(length, workers int) ([]int, error) {
	bounds := make([]int, workers+1)
	for i := 1; i <= workers; i++ {
		bounds[i] = length * i / workers
		if bounds[i] < bounds[i-1] {
			return nil, fmt.Errorf("%w: boundary %d jumped from %d to %d",
				ErrBoundaries, i, bounds[i-1], bounds[i])
		}
	}
	return bounds, nil
}

// New computes the boundaries for colors split across workers slices and
// captures every slice's following-snapshot of rounds colors. It performs no
// mutation; the ring must not be mutated between New and the workers
// starting, which the engine guarantees by capturing on the caller's
// goroutine before any worker is spawned.
func New(colors []recolor.Color, workers, rounds int) (*Plan, error) {
	bounds, err := Boundaries(len(colors), workers)
	if err != nil {
		return nil, err
	}

	following := make([][]recolor.Color, workers)
	for i := 0; i < workers; i++ {
		snap := make([]recolor.Color, rounds)
		for j, pos := 0, bounds[i+1]; j < rounds; j, pos = j+1, pos+1 {
			if pos >= len(colors) {
				pos -= len(colors)
			}
			snap[j] = colors[pos]
		}
		following[i] = snap
	}

	return &Plan{Boundaries: bounds, Following: following}, nil
}

// Slice returns worker i's half-open index range.
func (p *Plan) Slice(i int) (start, end int) {
	return p.Boundaries[i], p.Boundaries[i+1]
}

// Workers returns the number of slices in the plan.
func (p *Plan) Workers() int {
	return len(p.Boundaries) - 1
}
