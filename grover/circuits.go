// Package grover builds Grover search circuits on top of the quantum package
// and drives a full search run: superposition, oracle and diffuser
// iterations, then measurement.
package grover

import (
	"github.com/go-faster/errors"

	"github.com/meta77/grover/quantum"
)

// Sub-circuit names, as they appear in circuit drawings and run stages.
const (
	InitName     = "Init"
	OracleName   = "Oracle"
	DiffuserName = "Diffuser"
	GroverName   = "Grover"
)

// ErrInvalidIterations is returned for a negative iteration count.
var ErrInvalidIterations = errors.New("iterations must not be negative")

func allQubits(n int) []int {
	qs := make([]int, n)
	for i := range qs {
		qs[i] = i
	}
	return qs
}

// phaseFlipAllOnes appends H·MCX·H on the top qubit, which negates |1...1>.
func phaseFlipAllOnes(c *quantum.Circuit) error {
	top := c.NumQubits() - 1
	return c.AddAll(
		quantum.H(top),
		quantum.MCX(allQubits(top), top),
		quantum.H(top),
	)
}

// Uniform puts every qubit into superposition.
func Uniform(n int) (*quantum.Circuit, error) {
	c, err := quantum.NewCircuit(InitName, n)
	if err != nil {
		return nil, err
	}
	for q := range n {
		if err := c.Add(quantum.H(q)); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Oracle negates the amplitude of the basis state named by target and leaves
// every other amplitude unchanged. The circuit spans len(target) qubits.
func Oracle(target string) (*quantum.Circuit, error) {
	n := len(target)
	if n == 0 || n > quantum.MaxQubits {
		return nil, errors.Wrapf(quantum.ErrInvalidTarget, "oracle target %q", target)
	}
	if _, err := quantum.ParseBits(target, n); err != nil {
		return nil, err
	}
	c, err := quantum.NewCircuit(OracleName, n)
	if err != nil {
		return nil, err
	}

	// Character i of target is qubit n-1-i.
	var zeros []quantum.Gate
	for q := range n {
		if target[n-1-q] == '0' {
			zeros = append(zeros, quantum.X(q))
		}
	}
	if err := c.AddAll(zeros...); err != nil {
		return nil, err
	}
	if err := phaseFlipAllOnes(c); err != nil {
		return nil, err
	}
	if err := c.AddAll(zeros...); err != nil {
		return nil, err
	}
	return c, nil
}

// Diffuser reflects the state about the uniform superposition |s>. The gate
// sequence realises I - 2|s><s|, which is the textbook 2|s><s| - I up to a
// global phase of -1.
func Diffuser(n int) (*quantum.Circuit, error) {
	c, err := quantum.NewCircuit(DiffuserName, n)
	if err != nil {
		return nil, err
	}
	layer := func(gate func(int) quantum.Gate) error {
		for q := range n {
			if err := c.Add(gate(q)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := layer(quantum.H); err != nil {
		return nil, err
	}
	if err := layer(quantum.X); err != nil {
		return nil, err
	}
	if err := phaseFlipAllOnes(c); err != nil {
		return nil, err
	}
	if err := layer(quantum.X); err != nil {
		return nil, err
	}
	if err := layer(quantum.H); err != nil {
		return nil, err
	}
	return c, nil
}

// Iteration is one Grover step: Oracle(target) followed by the diffuser.
func Iteration(target string) (*quantum.Circuit, error) {
	oracle, err := Oracle(target)
	if err != nil {
		return nil, err
	}
	diffuser, err := Diffuser(len(target))
	if err != nil {
		return nil, err
	}
	c, err := quantum.NewCircuit(OracleName+"+"+DiffuserName, len(target))
	if err != nil {
		return nil, err
	}
	if err := c.Append(oracle); err != nil {
		return nil, err
	}
	if err := c.Append(diffuser); err != nil {
		return nil, err
	}
	return c, nil
}

// Build returns the complete search circuit: Uniform followed by iterations
// Grover steps.
func Build(target string, iterations int) (*quantum.Circuit, error) {
	if iterations < 0 {
		return nil, errors.Wrapf(ErrInvalidIterations, "got %d", iterations)
	}
	step, err := Iteration(target)
	if err != nil {
		return nil, err
	}
	uniform, err := Uniform(len(target))
	if err != nil {
		return nil, err
	}

	c, err := quantum.NewCircuit(GroverName, len(target))
	if err != nil {
		return nil, err
	}
	if err := c.Append(uniform); err != nil {
		return nil, err
	}
	for range iterations {
		if err := c.Append(step); err != nil {
			return nil, err
		}
	}
	return c, nil
}
