// Package config holds the emulator's run options, their validation rules
// and the optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/cvemu/internal/cv/fill"
	"github.com/kolkov/cvemu/internal/cv/output"
	"github.com/kolkov/cvemu/internal/cv/report"
)

// Limits and thresholds for validation. MaxWorkers matches what a sane
// thread budget on one machine looks like; the length thresholds guard the
// ring allocation (8 bytes per position).
const (
	MaxWorkers = 256

	// WarnLength is where the ring starts costing >2 GiB; runs above it
	// warn unless forced.
	WarnLength = 1 << 28

	// MaxLength is refused outright; see ring.MaxLength.
	MaxLength = 1 << 31
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid options")

// Options is one emulation run's full configuration. Field names double as
// YAML keys for config-file runs.
type Options struct {
	// Workers is the parallel worker (thread) budget, 1..MaxWorkers.
	Workers int `yaml:"cpus"`

	// Length is the ring size in positions.
	Length int `yaml:"length"`

	// ForceLength accepts lengths above WarnLength without a warning.
	ForceLength bool `yaml:"length-force"`

	// Rounds is how many recoloring rounds to run, 1..Length.
	Rounds int `yaml:"rounds"`

	// Pattern names the initial color generator (minstd, xorshift128plus).
	Pattern string `yaml:"init-pattern"`

	// Seed seeds the generator; runs are reproducible per (Pattern, Seed).
	Seed uint64 `yaml:"init-seed"`

	// OutFile is where the final ring is persisted.
	OutFile string `yaml:"file-out"`

	// OutWidth selects the artifact encoding: byte (narrowed) or word.
	OutWidth string `yaml:"out-width"`

	// Format names the timing report format (none, human, tdl, json).
	Format string `yaml:"format"`

	// Verify re-runs the recoloring sequentially on a copy and bit-compares.
	Verify bool `yaml:"verify"`
}

// Default returns the baked-in options: a 4-worker, 2 GiB, 4-round run,
// minstd-filled with seed 0, written byte-narrowed to cv_out.dat with a
// human-readable timing report.
func Default() Options {
	return Options{
		Workers:  4,
		Length:   1 << 28,
		Rounds:   4,
		Pattern:  "minstd",
		Seed:     0,
		OutFile:  "cv_out.dat",
		OutWidth: "byte",
		Format:   "human",
	}
}

// Load reads YAML options from path on top of the defaults. Keys absent from
// the file keep their default values.
func Load(path string) (Options, error) {
	opts := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}

// Validate checks every option and returns human-readable warnings for legal
// but dubious configurations. The first hard violation is returned as an
// error wrapping ErrInvalid and no run must be attempted.
func (o Options) Validate() ([]string, error) {
	if o.Workers < 1 || o.Workers > MaxWorkers {
		return nil, fmt.Errorf("%w: cpus %d out of range 1..%d", ErrInvalid, o.Workers, MaxWorkers)
	}
	if o.Length < 2 {
		return nil, fmt.Errorf("%w: length %d, need at least 2 positions", ErrInvalid, o.Length)
	}
	if o.Length < o.Workers {
		return nil, fmt.Errorf("%w: length %d below cpus %d", ErrInvalid, o.Length, o.Workers)
	}
	if o.Length > MaxLength {
		return nil, fmt.Errorf("%w: length %d above %d, ring would exceed 16 GiB", ErrInvalid, o.Length, MaxLength)
	}
	if o.Rounds < 1 {
		return nil, fmt.Errorf("%w: rounds %d, need at least 1", ErrInvalid, o.Rounds)
	}
	if o.Rounds > o.Length {
		// The finishing phase needs a following-snapshot no longer than the
		// ring itself; beyond that the extra rounds change nothing anyway.
		return nil, fmt.Errorf("%w: rounds %d above length %d", ErrInvalid, o.Rounds, o.Length)
	}
	if _, err := fill.ParsePattern(o.Pattern); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := output.ParseWidth(o.OutWidth); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := report.ParseFormat(o.Format); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	var warnings []string
	if o.Length > WarnLength && !o.ForceLength {
		warnings = append(warnings,
			fmt.Sprintf("length %d exceeds %d; the ring alone needs >2 GiB (use --length-force to silence)",
				o.Length, WarnLength))
	}
	if o.Rounds < 4 {
		warnings = append(warnings,
			fmt.Sprintf("with only %d rounds the coloring may not reach 6 colors", o.Rounds))
	}
	return warnings, nil
}
