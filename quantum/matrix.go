package quantum

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Unitary materialises the 2^n x 2^n matrix of c by running it on every basis
// state. Column j is the image of |j>. Cost is O(4^n * gates), so keep n small.
func Unitary(c *Circuit) (*mat.CDense, error) {
	dim := 1 << c.numQubits
	u := mat.NewCDense(dim, dim, nil)
	for j := 0; j < dim; j++ {
		col := make([]complex128, dim)
		col[j] = 1
		sv, err := NewStateVectorFrom(col)
		if err != nil {
			return nil, err
		}
		for _, g := range c.gates {
			if err := sv.Apply(g); err != nil {
				return nil, err
			}
		}
		for i, a := range sv.amplitudes {
			u.Set(i, j, a)
		}
	}
	return u, nil
}

// EqualUpToPhase reports whether b = e^{iφ}·a element-wise within tol for
// some global phase φ.
func EqualUpToPhase(a, b mat.CMatrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}

	var phase complex128
	found := false
	for i := 0; i < ar && !found; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(a.At(i, j)) > tol {
				phase = b.At(i, j) / a.At(i, j)
				found = true
				break
			}
		}
	}
	if !found {
		phase = 1
	}
	if math.Abs(cmplx.Abs(phase)-1) > tol {
		return false
	}

	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if cmplx.Abs(b.At(i, j)-phase*a.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}
