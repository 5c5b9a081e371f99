// Package engine runs the parallel recoloring step: partition the ring,
// capture every following-snapshot, fan one goroutine out per slice and wait.
//
// Workers share no mutable state. Each one writes only its own half-open
// index range of the ring and reads only that range plus its private
// snapshot, so the fan-out needs no locks and the result does not depend on
// scheduling order. Workers never block or yield; they run their slice to
// completion and exit, and no goroutine survives Run.
package engine

import (
	"golang.org/x/sync/errgroup"

	"github.com/kolkov/cvemu/internal/cv/chunk"
	"github.com/kolkov/cvemu/internal/cv/partition"
	"github.com/kolkov/cvemu/internal/cv/recolor"
)

// clampWorkers caps the worker count so every slice is at least rounds
// positions long, the minimum the chunk recolorer can finish from its
// snapshot. With the floor boundary formula, workers <= length/rounds
// guarantees that. The recolored ring is identical for every worker count,
// so clamping changes only parallelism, never output.
func clampWorkers(workers, length, rounds int) int {
	if limit := length / rounds; workers > limit {
		workers = limit
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// Run recolors the whole ring by rounds rounds using up to workers parallel
// workers, in place. The result is bit-identical to rounds naive full-ring
// sweeps.
//
// Run blocks until every worker has finished; there is no cancellation - a
// run either completes all slices or the process dies.
//
// Preconditions: colors is properly colored, workers >= 1 and
// rounds <= len(colors) (enforced by config validation).
func Run(colors []recolor.Color, workers, rounds int) error {
	if rounds < 1 || len(colors) == 0 {
		return nil
	}
	workers = clampWorkers(workers, len(colors), rounds)

	// All snapshots are captured here, before the first worker spawns.
	// From this point until Wait returns, slice i's memory belongs to
	// worker i alone.
	plan, err := partition.New(colors, workers, rounds)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for i := 0; i < plan.Workers(); i++ {
		start, end := plan.Slice(i)
		following := plan.Following[i]
		g.Go(func() error {
			return chunk.Recolor(colors[start:end], following)
		})
	}
	return g.Wait()
}
