package quantum

import "github.com/go-faster/errors"

// Construction errors.
var (
	ErrInvalidQubitIndex      = errors.New("invalid qubit index")
	ErrDuplicateControlTarget = errors.New("duplicate control/target qubit")
	ErrDimensionMismatch      = errors.New("circuit dimension mismatch")
	ErrInvalidQubitCount      = errors.New("invalid qubit count")
)

// Consistency errors. These signal a bug, not bad input.
var ErrUnnormalizedState = errors.New("state vector is not normalized")

// Input errors.
var (
	ErrInvalidShotCount     = errors.New("shot count must be positive")
	ErrInvalidTarget        = errors.New("invalid target bitstring")
	ErrUnsupportedStatement = errors.New("unsupported qasm statement")
)
