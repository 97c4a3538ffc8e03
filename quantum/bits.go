package quantum

import (
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// FormatBits renders basis index i as an n-character bitstring, most
// significant qubit first: the last character is qubit 0.
func FormatBits(i, n int) string {
	s := strconv.FormatInt(int64(i), 2)
	if len(s) < n {
		s = strings.Repeat("0", n-len(s)) + s
	}
	return s
}

// ParseBits is the inverse of FormatBits. bits must be exactly n characters
// over {'0','1'}.
func ParseBits(bits string, n int) (int, error) {
	if len(bits) != n {
		return 0, errors.Wrapf(ErrInvalidTarget, "%q has length %d, want %d", bits, len(bits), n)
	}
	idx := 0
	for _, ch := range bits {
		idx <<= 1
		switch ch {
		case '0':
		case '1':
			idx |= 1
		default:
			return 0, errors.Wrapf(ErrInvalidTarget, "%q contains %q", bits, ch)
		}
	}
	return idx, nil
}

// Amplitude is the display form of one basis-state amplitude.
type Amplitude struct {
	Index       int     `json:"index"`
	Bits        string  `json:"bits"`
	Real        float64 `json:"re"`
	Imag        float64 `json:"im"`
	Probability float64 `json:"p"`
}

// Phase returns the complex argument of the amplitude.
func (a Amplitude) Phase() float64 {
	return cmplx.Phase(complex(a.Real, a.Imag))
}

// Dump returns every amplitude as plain (re, im) pairs keyed by basis index.
func (s *StateVector) Dump() []Amplitude {
	out := make([]Amplitude, len(s.amplitudes))
	for i, a := range s.amplitudes {
		out[i] = Amplitude{
			Index:       i,
			Bits:        FormatBits(i, s.numQubits),
			Real:        real(a),
			Imag:        imag(a),
			Probability: real(a * cmplx.Conj(a)),
		}
	}
	return out
}
