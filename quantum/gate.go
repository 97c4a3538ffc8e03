package quantum

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-faster/errors"
)

// Kind identifies the unitary a Gate applies.
type Kind int

const (
	Hadamard Kind = iota
	PauliX
	MultiControlledX
)

func (k Kind) String() string {
	switch k {
	case Hadamard:
		return "H"
	case PauliX:
		return "X"
	case MultiControlledX:
		return "MCX"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Gate is a single unitary applied to a target qubit, optionally conditioned
// on a set of control qubits. Gates are values; they never hold amplitude data.
// The control list is private to the gate, so a Gate cannot change once built.
type Gate struct {
	Kind     Kind
	Target   int
	controls []int // only used by MultiControlledX
}

// H returns a Hadamard on qubit q.
func H(q int) Gate {
	return Gate{Kind: Hadamard, Target: q}
}

// X returns a Pauli-X (NOT) on qubit q.
func X(q int) Gate {
	return Gate{Kind: PauliX, Target: q}
}

// MCX returns a NOT on target that fires only when every control is 1.
// With no controls it behaves like X.
func MCX(controls []int, target int) Gate {
	ctrls := make([]int, len(controls))
	copy(ctrls, controls)
	return Gate{Kind: MultiControlledX, Target: target, controls: ctrls}
}

// Controls returns a copy of the control qubits.
func (g Gate) Controls() []int {
	return slices.Clone(g.controls)
}

// Qubits returns every qubit the gate touches, controls first.
func (g Gate) Qubits() []int {
	qs := make([]int, 0, len(g.controls)+1)
	qs = append(qs, g.controls...)
	return append(qs, g.Target)
}

// references reports whether the gate touches the given qubit.
func (g Gate) references(qubit int) bool {
	if g.Target == qubit {
		return true
	}
	for _, ctrl := range g.controls {
		if ctrl == qubit {
			return true
		}
	}
	return false
}

// Validate checks the gate against an n-qubit register.
func (g Gate) Validate(n int) error {
	if g.Target < 0 || g.Target >= n {
		return errors.Wrapf(ErrInvalidQubitIndex, "%s target q[%d] on %d qubits", g.Kind, g.Target, n)
	}
	switch g.Kind {
	case Hadamard, PauliX:
		if len(g.controls) > 0 {
			return errors.Errorf("%s takes no controls, got %v", g.Kind, g.controls)
		}
		return nil
	case MultiControlledX:
	default:
		return errors.Errorf("unknown gate kind %d", int(g.Kind))
	}

	seen := make(map[int]bool, len(g.controls))
	for _, c := range g.controls {
		if c < 0 || c >= n {
			return errors.Wrapf(ErrInvalidQubitIndex, "MCX control q[%d] on %d qubits", c, n)
		}
		if c == g.Target {
			return errors.Wrapf(ErrDuplicateControlTarget, "MCX control q[%d] is also the target", c)
		}
		if seen[c] {
			return errors.Wrapf(ErrDuplicateControlTarget, "MCX control q[%d] listed twice", c)
		}
		seen[c] = true
	}
	return nil
}

func (g Gate) String() string {
	if g.Kind != MultiControlledX {
		return fmt.Sprintf("%s q[%d]", g.Kind, g.Target)
	}
	ctrls := make([]string, len(g.controls))
	for i, c := range g.controls {
		ctrls[i] = fmt.Sprintf("q[%d]", c)
	}
	return fmt.Sprintf("MCX [%s] -> q[%d]", strings.Join(ctrls, ", "), g.Target)
}
