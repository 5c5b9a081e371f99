package naive

import (
	"testing"

	"github.com/kolkov/cvemu/internal/cv/recolor"
	"github.com/kolkov/cvemu/internal/cv/ring"
)

// TestRecolorGolden tests one round on the alternating ring against
// hand-computed values: Next(1,2)=1 and Next(2,1)=0.
func TestRecolorGolden(t *testing.T) {
	colors := []recolor.Color{1, 2, 1, 2, 1, 2, 1, 2}
	Recolor(colors, 1)

	want := []recolor.Color{1, 0, 1, 0, 1, 0, 1, 0}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("colors[%d] = %d, want %d", i, colors[i], want[i])
		}
	}
}

// TestRecolorUsesOldNeighborValues tests that a round is simultaneous: the
// update of a position must read its neighbor's pre-round color even though
// the sweep is in place.
func TestRecolorUsesOldNeighborValues(t *testing.T) {
	// With colors {8, 4, 2, 1}: position 0 must see b=4 (old), not the
	// round's new value of position 1.
	colors := []recolor.Color{8, 4, 2, 1}
	Recolor(colors, 1)

	// Next(8,4)  = k=2, bit 2 of 8 is 0  -> 4
	// Next(4,2)  = k=1, bit 1 of 4 is 0  -> 2
	// Next(2,1)  = k=0, bit 0 of 2 is 0  -> 0
	// Next(1,8)  = k=0, bit 0 of 1 is 1  -> 1  (wrap reads saved first = 8)
	want := []recolor.Color{4, 2, 0, 1}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("colors[%d] = %d, want %d", i, colors[i], want[i])
		}
	}
}

// TestRecolorPreservesProperColoring tests the invariant across rounds.
func TestRecolorPreservesProperColoring(t *testing.T) {
	r := ring.Ring{0x1F, 0x2E, 0x3D, 0x4C, 0x5B, 0x6A, 0x79, 0x88, 0x97}
	if !r.ProperlyColored() {
		t.Fatal("test ring not properly colored to begin with")
	}
	for round := 1; round <= 6; round++ {
		Recolor(r, 1)
		if !r.ProperlyColored() {
			t.Fatalf("coloring no longer proper after round %d: %v", round, r)
		}
	}
}
