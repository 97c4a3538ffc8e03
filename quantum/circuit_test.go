package quantum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuitAdd(t *testing.T) {
	c, err := NewCircuit("demo", 3)
	require.NoError(t, err)
	require.NoError(t, c.AddAll(H(0), H(1), MCX([]int{0, 1}, 2)))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "demo", c.Name())

	err = c.Add(H(3))
	assert.ErrorIs(t, err, ErrInvalidQubitIndex)
	assert.Contains(t, err.Error(), `circuit "demo" gate 3`)
	assert.Equal(t, 3, c.Len(), "rejected gate must not be appended")

	assert.ErrorIs(t, c.Add(MCX([]int{2}, 2)), ErrDuplicateControlTarget)

	_, err = NewCircuit("empty", 0)
	assert.ErrorIs(t, err, ErrInvalidQubitCount)
}

func TestCircuitGatesIsACopy(t *testing.T) {
	c, err := NewCircuit("demo", 3)
	require.NoError(t, err)
	require.NoError(t, c.Add(MCX([]int{0, 1}, 2)))

	gates := c.Gates()
	gates[0].Target = 0
	gates[0].Controls()[0] = 2
	assert.Equal(t, 2, c.Gates()[0].Target)
	assert.Equal(t, []int{0, 1}, c.Gates()[0].Controls())
}

func TestCircuitAppend(t *testing.T) {
	a, err := NewCircuit("a", 2)
	require.NoError(t, err)
	require.NoError(t, a.Add(H(0)))
	b, err := NewCircuit("b", 2)
	require.NoError(t, err)
	require.NoError(t, b.AddAll(X(1), MCX([]int{1}, 0)))

	require.NoError(t, a.Append(b))
	assert.Equal(t, []Gate{H(0), X(1), MCX([]int{1}, 0)}, a.Gates())
	assert.Equal(t, 2, b.Len())

	wide, err := NewCircuit("wide", 3)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Append(wide), ErrDimensionMismatch)
}

func TestCircuitInverse(t *testing.T) {
	c, err := NewCircuit("c", 3)
	require.NoError(t, err)
	require.NoError(t, c.AddAll(H(0), X(2), MCX([]int{0, 2}, 1), H(1)))

	sim, err := NewSimulator(3, WithSeed(1))
	require.NoError(t, err)
	require.NoError(t, sim.Apply(c))
	require.NoError(t, sim.Apply(c.Inverse()))

	sv := sim.StateVector()
	assert.InDelta(t, 1, real(sv.Amplitude(0)), tolerance)
	assert.Equal(t, "c†", c.Inverse().Name())
}

func TestCircuitPrefix(t *testing.T) {
	c, err := NewCircuit("c", 2)
	require.NoError(t, err)
	require.NoError(t, c.AddAll(H(0), H(1), X(0)))

	assert.Equal(t, 0, c.Prefix(-1).Len())
	assert.Equal(t, []Gate{H(0), H(1)}, c.Prefix(2).Gates())
	assert.Equal(t, 3, c.Prefix(10).Len())
}

func TestCircuitMoments(t *testing.T) {
	c, err := NewCircuit("c", 3)
	require.NoError(t, err)
	require.NoError(t, c.AddAll(
		H(0), H(1), H(2),
		X(0),
		MCX([]int{0, 1}, 2),
		H(2),
	))

	assert.Equal(t, [][]int{{0, 1, 2}, {3}, {4}, {5}}, c.Moments())
	assert.Equal(t, 4, c.Depth())
}

func TestMomentsBlockSpannedWires(t *testing.T) {
	c, err := NewCircuit("c", 3)
	require.NoError(t, err)
	// The CX between q0 and q2 is drawn across q1, so H(1) cannot share its column.
	require.NoError(t, c.AddAll(MCX([]int{0}, 2), H(1)))
	assert.Equal(t, [][]int{{0}, {1}}, c.Moments())
}
