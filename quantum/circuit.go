package quantum

import (
	"slices"

	"github.com/go-faster/errors"
)

// Circuit is an ordered gate list over a fixed number of qubits. Gates are
// only ever appended; accessors hand out copies, so a built circuit can be
// reused as a recipe.
type Circuit struct {
	name      string
	numQubits int
	gates     []Gate
}

// NewCircuit returns an empty circuit on numQubits qubits.
func NewCircuit(name string, numQubits int) (*Circuit, error) {
	if numQubits <= 0 || numQubits > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "circuit %q: %d (want 1..%d)", name, numQubits, MaxQubits)
	}
	return &Circuit{name: name, numQubits: numQubits}, nil
}

func (c *Circuit) Name() string { return c.name }

func (c *Circuit) NumQubits() int { return c.numQubits }

func (c *Circuit) Len() int { return len(c.gates) }

// Gates returns a copy of the gate list.
func (c *Circuit) Gates() []Gate {
	return slices.Clone(c.gates)
}

// Add validates g and appends it.
func (c *Circuit) Add(g Gate) error {
	if err := g.Validate(c.numQubits); err != nil {
		return errors.Wrapf(err, "circuit %q gate %d", c.name, len(c.gates))
	}
	c.gates = append(c.gates, g)
	return nil
}

// AddAll appends gates in order, stopping at the first invalid one.
func (c *Circuit) AddAll(gates ...Gate) error {
	for _, g := range gates {
		if err := c.Add(g); err != nil {
			return err
		}
	}
	return nil
}

// Append inlines every gate of sub. Both circuits must span the same qubits.
func (c *Circuit) Append(sub *Circuit) error {
	if sub.numQubits != c.numQubits {
		return errors.Wrapf(ErrDimensionMismatch, "append %q (%d qubits) to %q (%d qubits)",
			sub.name, sub.numQubits, c.name, c.numQubits)
	}
	c.gates = append(c.gates, sub.Gates()...)
	return nil
}

// Inverse returns the adjoint circuit. H, X and MCX are self-inverse, so this
// is the gate list reversed.
func (c *Circuit) Inverse() *Circuit {
	inv := &Circuit{name: c.name + "†", numQubits: c.numQubits}
	gates := c.Gates()
	for i := len(gates) - 1; i >= 0; i-- {
		inv.gates = append(inv.gates, gates[i])
	}
	return inv
}

// Prefix returns a circuit holding the first k gates.
func (c *Circuit) Prefix(k int) *Circuit {
	k = max(0, min(k, len(c.gates)))
	p := &Circuit{name: c.name, numQubits: c.numQubits}
	p.gates = c.Gates()[:k]
	return p
}

// Moments groups gate indices into columns of gates acting on disjoint
// qubits. Each gate lands in the earliest column after the last gate that
// touched any of its qubits. Multi-qubit gates span the wires between their
// outermost qubits and so block those too.
func (c *Circuit) Moments() [][]int {
	lastOnQubit := make([]int, c.numQubits)
	for q := range lastOnQubit {
		lastOnQubit[q] = -1
	}
	var moments [][]int
	for i, g := range c.gates {
		lo, hi := g.span()
		step := 0
		for q := lo; q <= hi; q++ {
			step = max(step, lastOnQubit[q]+1)
		}
		for len(moments) <= step {
			moments = append(moments, nil)
		}
		moments[step] = append(moments[step], i)
		for q := lo; q <= hi; q++ {
			lastOnQubit[q] = step
		}
	}
	return moments
}

// Depth is the number of moments.
func (c *Circuit) Depth() int {
	return len(c.Moments())
}

// span returns the lowest and highest qubit a gate covers when drawn.
func (g Gate) span() (lo, hi int) {
	lo, hi = g.Target, g.Target
	for _, ctrl := range g.controls {
		lo = min(lo, ctrl)
		hi = max(hi, ctrl)
	}
	return lo, hi
}
