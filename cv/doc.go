// Package cv provides the public API of the Cole-Vishkin emulator.
//
// The emulator runs one family of the Cole-Vishkin parallel symmetry-breaking
// step over a large cyclic color sequence on ordinary shared-memory hardware
// and measures the wall-clock cost of doing so under a fixed worker budget.
//
// # Quick start
//
// A run is one call:
//
//	opts := cv.DefaultOptions()
//	opts.Length = 1 << 20
//	opts.OutFile = "cv_out.dat"
//
//	result, err := cv.Run(opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("recoloring took %v\n", result.Timings.Recolor)
//
// The run fills the ring with a seeded pseudo-random proper coloring,
// recolors it for the configured number of rounds in parallel, writes the
// final colors to a binary artifact and reports per-phase durations.
//
// # How the parallel step works
//
// The ring is split into one contiguous slice per worker. Before any worker
// starts, each slice's "following-snapshot" - the colors sitting just past
// its end - is copied by value. From then on workers share nothing mutable:
// each recolors its own slice for all rounds using a diagonal update
// schedule plus its snapshot, and the result is bit-identical to recoloring
// the whole unsplit ring round by round. No locks, no mid-run
// synchronization, and the output does not depend on scheduling order.
//
// # Reproducibility
//
// Runs are deterministic per (pattern, seed, length, rounds); the worker
// count affects only speed, never output. Options.Verify re-runs the
// recoloring sequentially on a copy and bit-compares, which is how the
// engine's equivalence contract can be checked on real-size rings.
package cv
