package grover

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// angle is θ with sin θ = 1/√N for N = 2^n.
func angle(n int) float64 {
	return math.Asin(1 / math.Sqrt(float64(uint64(1)<<n)))
}

// OptimalIterations is the iteration count that maximises the success
// probability for a single marked item among 2^n, never less than 1.
func OptimalIterations(n int) int {
	k := int(math.Round(math.Pi/(4*angle(n)) - 0.5))
	return max(k, 1)
}

// SuccessProbability is the exact probability of measuring the marked item
// after k iterations: sin²((2k+1)θ).
func SuccessProbability(n, k int) float64 {
	s := math.Sin(float64(2*k+1) * angle(n))
	return s * s
}

// DiffusionMatrix returns 2|s><s| - I on n qubits.
func DiffusionMatrix(n int) *mat.CDense {
	dim := 1 << n
	off := complex(2/float64(dim), 0)
	d := mat.NewCDense(dim, dim, nil)
	for i := range dim {
		for j := range dim {
			v := off
			if i == j {
				v--
			}
			d.Set(i, j, v)
		}
	}
	return d
}
