// Package main implements the cvemu CLI.
//
// cvemu emulates the Cole-Vishkin parallel symmetry-breaking step over a
// large cyclic color sequence and measures the wall-clock cost of doing so
// under a fixed worker budget:
//
//	cvemu --cpus 4 --length 268435456 --rounds 4 --file-out cv_out.dat
//
// All options have defaults; run `cvemu --help` for the full surface.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
