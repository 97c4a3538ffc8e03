package quantum

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/go-faster/errors"
)

// NormTolerance is how far the total probability may drift from 1 before a
// state is rejected for sampling.
const NormTolerance = 1e-6

// Sampler draws Born-rule measurement outcomes from a state.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler whose draws are fully determined by seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewSamplerFrom wraps an existing random source.
func NewSamplerFrom(r *rand.Rand) *Sampler {
	return &Sampler{rng: r}
}

// Sample measures state shots times and returns the bitstring histogram.
// state is only read.
func (sm *Sampler) Sample(state *StateVector, shots int) (Counts, error) {
	if shots <= 0 {
		return nil, errors.Wrapf(ErrInvalidShotCount, "got %d", shots)
	}

	cdf := make([]float64, len(state.amplitudes))
	total := 0.0
	last := 0
	for i, p := range state.Probabilities() {
		total += p
		cdf[i] = total
		if p > 0 {
			last = i
		}
	}
	if math.Abs(total-1) > NormTolerance {
		return nil, errors.Wrapf(ErrUnnormalizedState, "total probability %.12f", total)
	}

	hits := make(map[int]int)
	for range shots {
		r := sm.rng.Float64()
		idx := sort.Search(len(cdf), func(i int) bool { return cdf[i] > r })
		if idx > last {
			// r landed in the rounding gap above the final cumulative sum.
			idx = last
		}
		hits[idx]++
	}

	counts := make(Counts, len(hits))
	for idx, n := range hits {
		counts[FormatBits(idx, state.numQubits)] = n
	}
	return counts, nil
}
