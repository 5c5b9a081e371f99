package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kolkov/cvemu/cv"
)

// newRootCmd builds the cvemu command tree. Options live in the returned
// command's closure, so every build starts from clean defaults and flag
// state.
func newRootCmd() *cobra.Command {
	opts := cv.DefaultOptions()
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "cvemu",
		Short: "Emulate Cole-Vishkin parallel recoloring and time it",
		Long: `cvemu emulates one step family of the Cole-Vishkin parallel
symmetry-breaking (6-coloring-reduction) algorithm over a large cyclic
sequence of colors, and measures the wall-clock cost of doing so under a
fixed worker budget.

The ring is filled with a seeded pseudo-random proper coloring, split into
one slice per worker, recolored for the configured number of rounds without
any mid-run synchronization, and written to a binary artifact. The result is
bit-identical for every worker count.

Rounds vs. initial color width (how many rounds until colors are small):
  1: 3 bits or less    2: 4 bits or less    3: 8 bits or less
  4: 128 bits or less  5: 2^64 bits or less`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				fileOpts, err := cv.LoadOptions(cfgPath)
				if err != nil {
					return err
				}
				mergeFlags(cmd, &fileOpts, opts)
				opts = fileOpts
			}

			res, err := cv.Run(opts)
			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
			}
			if err != nil {
				return err
			}
			return cv.Report(cmd.OutOrStdout(), opts.Format, res)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Workers, "cpus", opts.Workers,
		"worker threads running on the data; should not exceed physical cores by far")
	f.IntVar(&opts.Length, "length", opts.Length,
		"ring length in positions; needs ~8 bytes of memory each")
	f.BoolVar(&opts.ForceLength, "length-force", false,
		"accept lengths above 1<<28 without a warning (know which warning you are ignoring)")
	f.IntVar(&opts.Rounds, "rounds", opts.Rounds,
		"number of Cole-Vishkin rounds to execute")
	f.StringVar(&opts.Pattern, "init-pattern", opts.Pattern,
		"initial coloring generator: minstd or xorshift128plus (duplicates are redrawn either way)")
	f.Uint64Var(&opts.Seed, "init-seed", opts.Seed,
		"generator seed, for reproducible runs")
	f.StringVar(&opts.OutFile, "file-out", opts.OutFile,
		"result file; a bit pointless since no-one reads it, but without it the run would be too")
	f.StringVar(&opts.OutWidth, "out-width", opts.OutWidth,
		"artifact encoding: byte (narrowed) or word (raw little-endian)")
	f.StringVar(&opts.Format, "format", opts.Format,
		"timing report: none, human, tdl (tab-delimited line) or json")
	f.BoolVar(&opts.Verify, "verify", false,
		"cross-check the parallel result against a sequential reference run")
	f.StringVar(&cfgPath, "config", "",
		"YAML options file; explicit flags override file values")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// newVersionCmd reports the emulator version.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := cv.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "cvemu version %s (%s)\n", info.Version, info.Algorithm)
		},
	}
}

// mergeFlags copies every flag the user set explicitly over the config-file
// options, so the command line always wins over the file.
func mergeFlags(cmd *cobra.Command, into *cv.Options, fromFlags cv.Options) {
	set := func(name string) bool { return cmd.Flags().Changed(name) }
	if set("cpus") {
		into.Workers = fromFlags.Workers
	}
	if set("length") {
		into.Length = fromFlags.Length
	}
	if set("length-force") {
		into.ForceLength = fromFlags.ForceLength
	}
	if set("rounds") {
		into.Rounds = fromFlags.Rounds
	}
	if set("init-pattern") {
		into.Pattern = fromFlags.Pattern
	}
	if set("init-seed") {
		into.Seed = fromFlags.Seed
	}
	if set("file-out") {
		into.OutFile = fromFlags.OutFile
	}
	if set("out-width") {
		into.OutWidth = fromFlags.OutWidth
	}
	if set("format") {
		into.Format = fromFlags.Format
	}
	if set("verify") {
		into.Verify = fromFlags.Verify
	}
}
