package quantum

import (
	"math/rand/v2"
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

// Phase is the lifecycle state of a Simulator.
type Phase int

const (
	// Initialized means no circuit has been applied since construction or Reset.
	Initialized Phase = iota
	// Evolved means at least one circuit has been applied.
	Evolved
)

func (p Phase) String() string {
	if p == Evolved {
		return "evolved"
	}
	return "initialized"
}

// Simulator owns one state vector and evolves it circuit by circuit.
// It is not safe for concurrent use.
type Simulator struct {
	state   *StateVector
	phase   Phase
	sampler *Sampler
	log     *zap.Logger
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.sampler = NewSampler(seed)
	}
}

// WithRand samples from the given source.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) {
		s.sampler = NewSamplerFrom(r)
	}
}

// WithLogger logs applied circuits and sampling calls through l.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulator) {
		s.log = l
	}
}

// NewSimulator returns a simulator in |0...0> on numQubits qubits. Without
// WithSeed or WithRand the sampler is seeded from the clock.
func NewSimulator(numQubits int, opts ...Option) (*Simulator, error) {
	state, err := NewStateVector(numQubits)
	if err != nil {
		return nil, err
	}
	s := &Simulator{state: state, phase: Initialized}
	for _, opt := range opts {
		opt(s)
	}
	if s.sampler == nil {
		s.sampler = NewSampler(time.Now().UnixNano())
	}
	if s.log == nil {
		s.log = zap.L()
	}
	return s, nil
}

// NumQubits returns the register width fixed at construction.
func (s *Simulator) NumQubits() int { return s.state.numQubits }

// Phase reports whether any circuit has been applied since the last reset.
func (s *Simulator) Phase() Phase { return s.phase }

// Apply runs every gate of c against the owned state. The whole circuit is
// validated first, so a failing Apply leaves the state untouched.
func (s *Simulator) Apply(c *Circuit) error {
	if c.numQubits != s.state.numQubits {
		return errors.Wrapf(ErrDimensionMismatch, "circuit %q has %d qubits, simulator has %d",
			c.name, c.numQubits, s.state.numQubits)
	}
	for i, g := range c.gates {
		if err := g.Validate(s.state.numQubits); err != nil {
			return errors.Wrapf(err, "circuit %q gate %d", c.name, i)
		}
	}
	for _, g := range c.gates {
		s.state.apply(g)
	}
	s.phase = Evolved
	s.log.Debug("applied circuit",
		zap.String("circuit", c.name),
		zap.Int("gates", len(c.gates)),
		zap.Float64("norm", s.state.Norm()))
	return nil
}

// StateVector returns a copy of the current state.
func (s *Simulator) StateVector() *StateVector {
	return s.state.Clone()
}

// Sample draws shots measurements of the current state without disturbing it.
func (s *Simulator) Sample(shots int) (Counts, error) {
	counts, err := s.sampler.Sample(s.state, shots)
	if err != nil {
		s.log.Error("sampling failed", zap.Int("shots", shots), zap.Error(err))
		return nil, err
	}
	s.log.Debug("sampled state", zap.Int("shots", shots), zap.Int("outcomes", len(counts)))
	return counts, nil
}

// Reset returns the register to |0...0>. The sampler keeps its position.
func (s *Simulator) Reset() {
	for i := range s.state.amplitudes {
		s.state.amplitudes[i] = 0
	}
	s.state.amplitudes[0] = 1
	s.phase = Initialized
}
