package grover

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-faster/errors"

	"github.com/meta77/grover/quantum"
)

// Config describes one search run. A TOML run file decodes straight into it.
type Config struct {
	Qubits     int    `toml:"qubits"`
	Target     string `toml:"target"`
	Shots      int    `toml:"shots"`
	Seed       *int64 `toml:"seed"`
	Iterations int    `toml:"iterations"`
}

// NewConfig returns the defaults: a 3-qubit search for "101" with 1024 shots
// and a single iteration.
func NewConfig() *Config {
	return &Config{
		Qubits:     3,
		Target:     "101",
		Shots:      1024,
		Iterations: 1,
	}
}

// LoadConfig reads a TOML run file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (*Config, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read run file %s", path)
	}
	cfg := NewConfig()
	md, err := toml.Decode(string(blob), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "decode run file %s", path)
	}
	// A file naming only a target sizes the register from it.
	if md.IsDefined("target") && !md.IsDefined("qubits") {
		cfg.Qubits = len(cfg.Target)
	}
	return cfg, nil
}

// Validate checks the config against the simulator's limits.
func (c *Config) Validate() error {
	if c.Qubits <= 0 || c.Qubits > quantum.MaxQubits {
		return errors.Wrapf(quantum.ErrInvalidQubitCount, "qubits %d (want 1..%d)", c.Qubits, quantum.MaxQubits)
	}
	if _, err := quantum.ParseBits(c.Target, c.Qubits); err != nil {
		return err
	}
	if c.Shots <= 0 {
		return errors.Wrapf(quantum.ErrInvalidShotCount, "shots %d", c.Shots)
	}
	if c.Iterations < 0 {
		return errors.Wrapf(ErrInvalidIterations, "got %d", c.Iterations)
	}
	return nil
}
