package main

import (
	"github.com/go-faster/errors"

	"github.com/meta77/grover/grover"
)

// Conf holds the process-wide options.
type Conf struct {
	DevMode    bool   `long:"dev-mode" description:"log in console format instead of JSON" env:"GROVER_DEV_MODE"`
	LogLevel   string `long:"log-level" description:"log level" default:"warn" choice:"debug" choice:"info" choice:"warn" choice:"error" env:"GROVER_LOG_LEVEL"`
	LogFile    string `long:"log-file" description:"append logs to this file" env:"GROVER_LOG_FILE"`
	ConfigPath string `long:"config" description:"TOML run file with qubits, target, shots, seed and iterations" env:"GROVER_CONFIG"`
}

// SearchOptions are the run parameters shared by the run and tui commands. Zero
// values defer to the run file, then to the built-in defaults.
type SearchOptions struct {
	Qubits     int    `short:"n" long:"qubits" description:"number of qubits (default: length of the target)" env:"GROVER_QUBITS"`
	Target     string `short:"t" long:"target" description:"marked bitstring, qubit 0 is the last character" env:"GROVER_TARGET"`
	Shots      int    `short:"s" long:"shots" description:"number of measurements" env:"GROVER_SHOTS"`
	Seed       *int64 `long:"seed" description:"sampler seed (default: from the clock)" env:"GROVER_SEED"`
	Iterations *int   `short:"k" long:"iterations" description:"oracle and diffuser rounds" env:"GROVER_ITERATIONS"`
	Optimal    bool   `long:"optimal" description:"use the iteration count that maximises the success probability" env:"GROVER_OPTIMAL"`
}

// resolve layers the options over the run file (if any) and the defaults,
// and validates the result.
func (o *SearchOptions) resolve(conf *Conf) (grover.Config, error) {
	cfg := grover.NewConfig()
	if conf.ConfigPath != "" {
		var err error
		if cfg, err = grover.LoadConfig(conf.ConfigPath); err != nil {
			return grover.Config{}, err
		}
	}

	if o.Target != "" {
		cfg.Target = o.Target
		cfg.Qubits = len(o.Target)
	}
	if o.Qubits != 0 {
		cfg.Qubits = o.Qubits
	}
	if o.Shots != 0 {
		cfg.Shots = o.Shots
	}
	if o.Seed != nil {
		cfg.Seed = o.Seed
	}
	if o.Iterations != nil {
		cfg.Iterations = *o.Iterations
	}
	if o.Optimal {
		cfg.Iterations = grover.OptimalIterations(cfg.Qubits)
	}

	if err := cfg.Validate(); err != nil {
		return grover.Config{}, errors.Wrap(err, "invalid search options")
	}
	return *cfg, nil
}
