package grover

import (
	"context"
	"math/cmplx"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"

	"github.com/meta77/grover/quantum"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Stage is the state vector right after one named sub-circuit.
type Stage struct {
	Name      string              `json:"name"`
	Iteration int                 `json:"iteration,omitempty"`
	State     []quantum.Amplitude `json:"state"`
}

// Result is everything a search run produced. Probability is |<target|ψ>|²
// of the final state and Theoretical is sin²((2k+1)θ) for the same n and k.
type Result struct {
	ID          string           `json:"id"`
	Target      string           `json:"target"`
	Qubits      int              `json:"qubits"`
	Iterations  int              `json:"iterations"`
	Shots       int              `json:"shots"`
	Seed        int64            `json:"seed"`
	Stages      []Stage          `json:"stages"`
	Omitted     int              `json:"omitted_stages,omitempty"`
	Probability float64          `json:"probability"`
	Theoretical float64          `json:"theoretical"`
	Counts      quantum.Counts   `json:"counts"`
	Circuit     *quantum.Circuit `json:"-"`
	QASM        string           `json:"qasm"`
}

// JSON renders the result as indented JSON.
func (r *Result) JSON() string {
	st, err := jsonIter.Marshal(r)
	if err != nil {
		zap.L().Error("failed to marshal grover result", zap.Error(err))
		return ""
	}
	return string(pretty.Pretty(st))
}

// DefaultStageIterations is how many leading iterations Run records in full
// unless WithStageIterations says otherwise.
const DefaultStageIterations = 1

type runOptions struct {
	log             *zap.Logger
	stageIterations int
}

// Option configures Run.
type Option func(*runOptions)

// WithLogger logs the run and its simulator through l instead of zap.L().
func WithLogger(l *zap.Logger) Option {
	return func(o *runOptions) {
		o.log = l
	}
}

// WithStageIterations records the state after the oracle and diffuser of the
// first k iterations. Init and the final state are always recorded; the
// stages in between are applied but not kept. A negative k records every
// stage.
func WithStageIterations(k int) Option {
	return func(o *runOptions) {
		o.stageIterations = k
	}
}

// Run performs a complete search: uniform superposition, cfg.Iterations
// oracle and diffuser rounds, then cfg.Shots measurements. ctx is checked
// between stages. A nil cfg.Seed draws one from the clock; the seed used is
// reported in the Result either way.
func Run(ctx context.Context, cfg Config, opts ...Option) (*Result, error) {
	o := &runOptions{stageIterations: DefaultStageIterations}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = zap.L()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid run config")
	}

	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	id := uuid.NewString()
	log := o.log.With(zap.String("run", id))

	uniform, err := Uniform(cfg.Qubits)
	if err != nil {
		return nil, err
	}
	oracle, err := Oracle(cfg.Target)
	if err != nil {
		return nil, err
	}
	diffuser, err := Diffuser(cfg.Qubits)
	if err != nil {
		return nil, err
	}
	full, err := Build(cfg.Target, cfg.Iterations)
	if err != nil {
		return nil, err
	}

	sim, err := quantum.NewSimulator(cfg.Qubits, quantum.WithSeed(seed), quantum.WithLogger(log))
	if err != nil {
		return nil, err
	}

	res := &Result{
		ID:          id,
		Target:      cfg.Target,
		Qubits:      cfg.Qubits,
		Iterations:  cfg.Iterations,
		Shots:       cfg.Shots,
		Seed:        seed,
		Theoretical: SuccessProbability(cfg.Qubits, cfg.Iterations),
		Circuit:     full,
		QASM:        full.QASM(),
	}
	stage := func(c *quantum.Circuit, iteration int, record bool) error {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "before stage %s", c.Name())
		}
		if err := sim.Apply(c); err != nil {
			return errors.Wrapf(err, "stage %s", c.Name())
		}
		if !record {
			res.Omitted++
			return nil
		}
		res.Stages = append(res.Stages, Stage{
			Name:      c.Name(),
			Iteration: iteration,
			State:     sim.StateVector().Dump(),
		})
		return nil
	}

	// Each recorded stage holds 2^n amplitudes, so long runs keep only the
	// leading iterations and the final state.
	keep := func(k int) bool {
		return o.stageIterations < 0 || k <= o.stageIterations
	}
	if err := stage(uniform, 0, true); err != nil {
		return nil, err
	}
	for k := 1; k <= cfg.Iterations; k++ {
		if err := stage(oracle, k, keep(k)); err != nil {
			return nil, err
		}
		if err := stage(diffuser, k, keep(k) || k == cfg.Iterations); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "before sampling")
	}

	idx, err := quantum.ParseBits(cfg.Target, cfg.Qubits)
	if err != nil {
		return nil, err
	}
	amp := sim.StateVector().Amplitude(idx)
	res.Probability = real(amp * cmplx.Conj(amp))

	if res.Counts, err = sim.Sample(cfg.Shots); err != nil {
		return nil, err
	}

	top, topN := res.Counts.Top()
	log.Info("grover run finished",
		zap.String("target", cfg.Target),
		zap.Int("qubits", cfg.Qubits),
		zap.Int("iterations", cfg.Iterations),
		zap.Int("shots", cfg.Shots),
		zap.Int64("seed", seed),
		zap.Float64("probability", res.Probability),
		zap.String("top", top),
		zap.Int("top_count", topN),
		zap.Int("recorded_stages", len(res.Stages)),
		zap.Int("omitted_stages", res.Omitted),
	)
	return res, nil
}
