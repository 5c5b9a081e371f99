package cv

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/kolkov/cvemu/internal/cv/config"
	"github.com/kolkov/cvemu/internal/cv/engine"
	"github.com/kolkov/cvemu/internal/cv/fill"
	"github.com/kolkov/cvemu/internal/cv/naive"
	"github.com/kolkov/cvemu/internal/cv/output"
	"github.com/kolkov/cvemu/internal/cv/report"
	"github.com/kolkov/cvemu/internal/cv/ring"
)

// ErrVerify reports that the parallel engine and the sequential reference
// disagreed. This cannot happen unless the engine (or the machine) is
// broken, which is exactly why the check exists.
var ErrVerify = errors.New("cv: parallel result differs from sequential reference")

// Options configures one emulation run. The zero value is not runnable; use
// DefaultOptions as the base.
type Options struct {
	// Workers is the parallel worker budget (1..256).
	Workers int

	// Length is the ring size in positions (2..1<<31, at least Workers).
	Length int

	// ForceLength accepts lengths above 1<<28 without a warning.
	ForceLength bool

	// Rounds is the number of recoloring rounds (1..Length).
	Rounds int

	// Pattern names the initial color generator: "minstd" or
	// "xorshift128plus".
	Pattern string

	// Seed seeds the generator.
	Seed uint64

	// OutFile is the binary artifact path; empty skips writing.
	OutFile string

	// OutWidth is the artifact encoding: "byte" (narrowed) or "word".
	OutWidth string

	// Format names the timing report format: "none", "human", "tdl",
	// "json". Run does not render the report itself; the value is
	// validated here so a bad name fails before minutes of work.
	Format string

	// Verify re-runs the recoloring sequentially on a copy of the filled
	// ring and bit-compares against the parallel result.
	Verify bool
}

// DefaultOptions returns the canonical defaults: 4 workers, a 1<<28 ring,
// 4 rounds, minstd fill with seed 0, byte-narrowed output to cv_out.dat,
// human-readable report.
func DefaultOptions() Options {
	return fromInternal(config.Default())
}

// LoadOptions reads options from a YAML file on top of the defaults.
func LoadOptions(path string) (Options, error) {
	opts, err := config.Load(path)
	if err != nil {
		return Options{}, err
	}
	return fromInternal(opts), nil
}

// Result carries what a run produced besides the artifact on disk. The ring
// itself is not returned: at the default length it is a multi-GiB buffer
// whose only consumer is the artifact writer.
type Result struct {
	// Timings holds the measured phase durations.
	Timings report.Timings

	// Warnings lists legal-but-dubious configuration findings.
	Warnings []string
}

// Run executes one full emulation: validate, allocate, fill, recolor in
// parallel, optionally verify, write the artifact, and time each phase.
func Run(opts Options) (Result, error) {
	var res Result
	clockStart := time.Now()

	warnings, err := opts.internal().Validate()
	if err != nil {
		return res, err
	}
	res.Warnings = warnings

	pattern, err := fill.ParsePattern(opts.Pattern)
	if err != nil {
		return res, err
	}
	width, err := output.ParseWidth(opts.OutWidth)
	if err != nil {
		return res, err
	}

	// Phase 1: allocate and fill.
	r, err := ring.New(opts.Length)
	if err != nil {
		return res, err
	}
	if err := fill.New(pattern, opts.Seed).Fill(r); err != nil {
		return res, err
	}
	clockReady := time.Now()

	// The verify copy must be taken from the filled, pre-run ring.
	var check ring.Ring
	if opts.Verify {
		check = r.Clone()
	}

	// Phase 2: the parallel recoloring step.
	if err := engine.Run(r, opts.Workers, opts.Rounds); err != nil {
		return res, err
	}
	clockDone := time.Now()

	if opts.Verify {
		naive.Recolor(check, opts.Rounds)
		for i := range r {
			if r[i] != check[i] {
				return res, fmt.Errorf("%w: first mismatch at position %d (%#x vs %#x)",
					ErrVerify, i, r[i], check[i])
			}
		}
	}

	// Phase 3: persist the artifact.
	clockWrite := time.Now()
	if opts.OutFile != "" {
		if err := output.WriteFile(opts.OutFile, r, width); err != nil {
			return res, err
		}
	}
	clockFinish := time.Now()

	res.Timings = report.Timings{
		Init:    clockReady.Sub(clockStart),
		Recolor: clockDone.Sub(clockReady),
		Cleanup: clockFinish.Sub(clockWrite),
		All:     clockFinish.Sub(clockStart),
	}
	return res, nil
}

// Report renders a run's timings to w in the named format.
func Report(w io.Writer, format string, res Result) error {
	f, err := report.ParseFormat(format)
	if err != nil {
		return err
	}
	return report.Render(w, f, res.Timings)
}

// internal converts the public options to the internal config shape.
func (o Options) internal() config.Options {
	return config.Options{
		Workers:     o.Workers,
		Length:      o.Length,
		ForceLength: o.ForceLength,
		Rounds:      o.Rounds,
		Pattern:     o.Pattern,
		Seed:        o.Seed,
		OutFile:     o.OutFile,
		OutWidth:    o.OutWidth,
		Format:      o.Format,
		Verify:      o.Verify,
	}
}

// fromInternal converts the internal config shape to the public options.
func fromInternal(o config.Options) Options {
	return Options{
		Workers:     o.Workers,
		Length:      o.Length,
		ForceLength: o.ForceLength,
		Rounds:      o.Rounds,
		Pattern:     o.Pattern,
		Seed:        o.Seed,
		OutFile:     o.OutFile,
		OutWidth:    o.OutWidth,
		Format:      o.Format,
		Verify:      o.Verify,
	}
}
