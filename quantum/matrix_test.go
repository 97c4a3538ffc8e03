package quantum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestUnitaryHadamard(t *testing.T) {
	c, err := NewCircuit("h", 1)
	require.NoError(t, err)
	require.NoError(t, c.Add(H(0)))

	u, err := Unitary(c)
	require.NoError(t, err)
	s := complex(1/math.Sqrt2, 0)
	want := mat.NewCDense(2, 2, []complex128{s, s, s, -s})
	assert.True(t, mat.CEqualApprox(u, want, tolerance))
}

func TestUnitaryCNOT(t *testing.T) {
	c, err := NewCircuit("cx", 2)
	require.NoError(t, err)
	require.NoError(t, c.Add(MCX([]int{0}, 1)))

	u, err := Unitary(c)
	require.NoError(t, err)
	// Control is qubit 0 (bit 1), so |01> <-> |11>.
	want := mat.NewCDense(4, 4, []complex128{
		1, 0, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		0, 1, 0, 0,
	})
	assert.True(t, mat.CEqualApprox(u, want, tolerance))
}

func TestEqualUpToPhase(t *testing.T) {
	id := mat.NewCDense(2, 2, []complex128{1, 0, 0, 1})
	negID := mat.NewCDense(2, 2, []complex128{-1, 0, 0, -1})
	iID := mat.NewCDense(2, 2, []complex128{1i, 0, 0, 1i})
	x := mat.NewCDense(2, 2, []complex128{0, 1, 1, 0})
	z := mat.NewCDense(2, 2, []complex128{1, 0, 0, -1})
	half := mat.NewCDense(2, 2, []complex128{0.5, 0, 0, 0.5})
	wide := mat.NewCDense(2, 3, nil)

	assert.True(t, EqualUpToPhase(id, id, tolerance))
	assert.True(t, EqualUpToPhase(id, negID, tolerance))
	assert.True(t, EqualUpToPhase(id, iID, tolerance))
	assert.False(t, EqualUpToPhase(id, x, tolerance))
	assert.False(t, EqualUpToPhase(id, z, tolerance))
	assert.False(t, EqualUpToPhase(id, half, tolerance))
	assert.False(t, EqualUpToPhase(id, wide, tolerance))
}
