package engine

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/cvemu/internal/cv/naive"
	"github.com/kolkov/cvemu/internal/cv/recolor"
	"github.com/kolkov/cvemu/internal/cv/ring"
)

// properRandom returns a properly colored ring, deterministic per seed.
func properRandom(t *testing.T, n int, seed int64) ring.Ring {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r := make(ring.Ring, n)
	for i := range r {
		for {
			c := recolor.Color(rng.Uint64())
			if i > 0 && c == r[i-1] {
				continue
			}
			if i == n-1 && c == r[0] {
				continue
			}
			r[i] = c
			break
		}
	}
	require.True(t, r.ProperlyColored())
	return r
}

// TestRunMatchesNaive is the equivalence property: for proper rings, any
// worker count in 1..L and any round count up to L, the parallel engine must
// be bit-identical to the naive sequential sweeps.
func TestRunMatchesNaive(t *testing.T) {
	lengths := []int{2, 8, 17, 64, 257}
	rounds := []int{1, 2, 4, 5, 11}

	for _, length := range lengths {
		for _, r := range rounds {
			if r > length {
				continue
			}
			reference := properRandom(t, length, int64(length*31+r))
			want := reference.Clone()
			naive.Recolor(want, r)

			for _, workers := range []int{1, 2, 3, 7, length / 2, length} {
				if workers < 1 {
					continue
				}
				got := reference.Clone()
				require.NoError(t, Run(got, workers, r))
				assert.Equal(t, want, got,
					"length=%d rounds=%d workers=%d", length, r, workers)
			}
		}
	}
}

// TestRunIdempotentAcrossWorkerCounts is the partition-count idempotence
// property: the final ring does not depend on how many slices it was split
// into.
func TestRunIdempotentAcrossWorkerCounts(t *testing.T) {
	reference := properRandom(t, 120, 5)

	baseline := reference.Clone()
	require.NoError(t, Run(baseline, 1, 4))

	for workers := 2; workers <= 16; workers++ {
		got := reference.Clone()
		require.NoError(t, Run(got, workers, 4))
		assert.Equal(t, baseline, got, "workers=%d", workers)
	}
}

// TestRunGolden asserts the end-to-end golden from the alternating ring:
// one round over [1 2 1 2 1 2 1 2] yields [1 0 1 0 1 0 1 0] on both the
// naive and the chunked path.
func TestRunGolden(t *testing.T) {
	want := ring.Ring{1, 0, 1, 0, 1, 0, 1, 0}

	viaNaive := ring.Ring{1, 2, 1, 2, 1, 2, 1, 2}
	naive.Recolor(viaNaive, 1)
	assert.Equal(t, want, viaNaive)

	viaEngine := ring.Ring{1, 2, 1, 2, 1, 2, 1, 2}
	require.NoError(t, Run(viaEngine, 2, 1))
	assert.Equal(t, want, viaEngine)
}

// TestRunPreservesProperColoring tests the invariant after each of several
// round counts.
func TestRunPreservesProperColoring(t *testing.T) {
	for r := 1; r <= 6; r++ {
		got := properRandom(t, 200, 99)
		require.NoError(t, Run(got, 4, r))
		assert.True(t, got.ProperlyColored(), "rounds=%d", r)
	}
}

// TestClampWorkers tests the short-slice policy: worker counts that would
// produce slices shorter than the round count are reduced, never below one.
func TestClampWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		length  int
		rounds  int
		want    int
	}{
		{name: "no clamp needed", workers: 4, length: 100, rounds: 4, want: 4},
		{name: "clamped to length/rounds", workers: 16, length: 40, rounds: 4, want: 10},
		{name: "clamped to one", workers: 8, length: 10, rounds: 10, want: 1},
		{name: "exact fit", workers: 10, length: 40, rounds: 4, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampWorkers(tt.workers, tt.length, tt.rounds))
		})
	}
}

// TestRunShortSlices tests rings where the requested worker count exceeds
// what the round count allows; the clamp must keep the result identical to
// the naive reference.
func TestRunShortSlices(t *testing.T) {
	reference := properRandom(t, 10, 77)
	want := reference.Clone()
	naive.Recolor(want, 4)

	// 10 positions, 4 rounds: anything above 2 workers would yield slices
	// shorter than the round count.
	for _, workers := range []int{3, 5, 10} {
		got := reference.Clone()
		require.NoError(t, Run(got, workers, 4))
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

// BenchmarkRun measures the full parallel step at several worker counts.
func BenchmarkRun(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	base := make(ring.Ring, 1<<18)
	for i := range base {
		for {
			c := recolor.Color(rng.Uint64())
			if i > 0 && c == base[i-1] {
				continue
			}
			if i == len(base)-1 && c == base[0] {
				continue
			}
			base[i] = c
			break
		}
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			colors := make(ring.Ring, len(base))
			b.SetBytes(int64(len(base) * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				copy(colors, base)
				b.StartTimer()
				if err := Run(colors, workers, 4); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
