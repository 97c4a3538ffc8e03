package quantum

import (
	"math"
	"math/cmplx"

	"github.com/go-faster/errors"
)

// MaxQubits bounds the register size; 2^20 amplitudes is 16 MiB.
const MaxQubits = 20

// StateVector is a dense n-qubit state. Amplitude i belongs to the basis state
// whose bit q (1<<q) holds qubit q, i.e. qubit 0 is the least significant bit.
type StateVector struct {
	amplitudes []complex128
	numQubits  int
}

// NewStateVector returns |0...0> on numQubits qubits.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits <= 0 || numQubits > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "%d (want 1..%d)", numQubits, MaxQubits)
	}
	amps := make([]complex128, 1<<numQubits)
	amps[0] = 1
	return &StateVector{amplitudes: amps, numQubits: numQubits}, nil
}

// NewStateVectorFrom copies amps into a new state. The length must be a power
// of two; normalization is not checked here.
func NewStateVectorFrom(amps []complex128) (*StateVector, error) {
	n := 0
	for 1<<n < len(amps) {
		n++
	}
	if len(amps) < 2 || 1<<n != len(amps) {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "%d amplitudes is not a power of two", len(amps))
	}
	if n > MaxQubits {
		return nil, errors.Wrapf(ErrInvalidQubitCount, "%d (want 1..%d)", n, MaxQubits)
	}
	cp := make([]complex128, len(amps))
	copy(cp, amps)
	return &StateVector{amplitudes: cp, numQubits: n}, nil
}

// NumQubits returns the register width n.
func (s *StateVector) NumQubits() int { return s.numQubits }

// Len returns 2^n, the number of amplitudes.
func (s *StateVector) Len() int { return len(s.amplitudes) }

// Amplitude returns the amplitude of basis state i.
func (s *StateVector) Amplitude(i int) complex128 { return s.amplitudes[i] }

// Amplitudes returns a copy of the amplitude slice.
func (s *StateVector) Amplitudes() []complex128 {
	amps := make([]complex128, len(s.amplitudes))
	copy(amps, s.amplitudes)
	return amps
}

// Clone returns an independent copy of the state.
func (s *StateVector) Clone() *StateVector {
	amps := make([]complex128, len(s.amplitudes))
	copy(amps, s.amplitudes)
	return &StateVector{amplitudes: amps, numQubits: s.numQubits}
}

// Probabilities returns |a_i|^2 for every basis state.
func (s *StateVector) Probabilities() []float64 {
	probs := make([]float64, len(s.amplitudes))
	for i, a := range s.amplitudes {
		probs[i] = real(a * cmplx.Conj(a))
	}
	return probs
}

// Norm returns the sum of squared magnitudes; 1 for a valid state.
func (s *StateVector) Norm() float64 {
	total := 0.0
	for _, a := range s.amplitudes {
		total += real(a * cmplx.Conj(a))
	}
	return total
}

// Fidelity returns |<s|other>|^2. Both states must have the same size.
func (s *StateVector) Fidelity(other *StateVector) (float64, error) {
	if other.numQubits != s.numQubits {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d vs %d qubits", s.numQubits, other.numQubits)
	}
	var inner complex128
	for i, a := range s.amplitudes {
		inner += cmplx.Conj(a) * other.amplitudes[i]
	}
	return real(inner * cmplx.Conj(inner)), nil
}

// Apply validates g against the register and applies it in place.
func (s *StateVector) Apply(g Gate) error {
	if err := g.Validate(s.numQubits); err != nil {
		return err
	}
	s.apply(g)
	return nil
}

// apply assumes g has been validated.
func (s *StateVector) apply(g Gate) {
	switch g.Kind {
	case Hadamard:
		s.applyH(g.Target)
	case PauliX:
		s.applyX(g.Target)
	case MultiControlledX:
		s.applyMCX(g.controls, g.Target)
	}
}

func (s *StateVector) applyH(q int) {
	hFactor := complex(1.0/math.Sqrt2, 0)
	n := len(s.amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			a, b := s.amplitudes[i], s.amplitudes[j]
			s.amplitudes[i] = hFactor * (a + b)
			s.amplitudes[j] = hFactor * (a - b)
		}
	}
}

func (s *StateVector) applyX(q int) {
	n := len(s.amplitudes)
	bit := 1 << q
	for i := 0; i < n; i++ {
		if i&bit == 0 {
			j := i | bit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

func (s *StateVector) applyMCX(controls []int, target int) {
	n := len(s.amplitudes)
	cMask := 0
	for _, c := range controls {
		cMask |= 1 << c
	}
	tBit := 1 << target
	for i := 0; i < n; i++ {
		if i&cMask == cMask && i&tBit == 0 {
			j := i | tBit
			s.amplitudes[i], s.amplitudes[j] = s.amplitudes[j], s.amplitudes[i]
		}
	}
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginal |0>/|1> probability of each qubit.
func (s *StateVector) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, s.numQubits)
	for i, a := range s.amplitudes {
		prob := real(a * cmplx.Conj(a))
		for q := 0; q < s.numQubits; q++ {
			if i&(1<<q) != 0 {
				probs[q].Prob1 += prob
			} else {
				probs[q].Prob0 += prob
			}
		}
	}
	return probs
}
