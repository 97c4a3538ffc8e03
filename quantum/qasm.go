package quantum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Pre-compiled regexps for QASM parsing.
var (
	qregRegex    = regexp.MustCompile(`^qreg\s+(\w+)\s*\[\s*(\d+)\s*\]\s*;?$`)
	gateRegex    = regexp.MustCompile(`^(\w+)\s+(\w+\s*\[\s*\d+\s*\](?:\s*,\s*\w+\s*\[\s*\d+\s*\])*)\s*;?$`)
	operandRegex = regexp.MustCompile(`(\w+)\s*\[\s*(\d+)\s*\]`)
)

// QASM renders the circuit as OpenQASM 2.0, measuring every qubit at the end.
// A zero-control MCX is written as x.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	if c.name != "" {
		fmt.Fprintf(&sb, "// %s\n", c.name)
	}
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.numQubits)
	fmt.Fprintf(&sb, "creg c[%d];\n\n", c.numQubits)

	for _, g := range c.gates {
		switch {
		case g.Kind == Hadamard:
			fmt.Fprintf(&sb, "h q[%d];\n", g.Target)
		case g.Kind == PauliX || len(g.controls) == 0:
			fmt.Fprintf(&sb, "x q[%d];\n", g.Target)
		default:
			op := "mcx"
			switch len(g.controls) {
			case 1:
				op = "cx"
			case 2:
				op = "ccx"
			}
			sb.WriteString(op + " ")
			for _, ctrl := range g.controls {
				fmt.Fprintf(&sb, "q[%d], ", ctrl)
			}
			fmt.Fprintf(&sb, "q[%d];\n", g.Target)
		}
	}

	sb.WriteString("\n")
	for q := range c.numQubits {
		fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", q, q)
	}
	return sb.String()
}

// ParseQASM reads the OpenQASM 2.0 subset written by Circuit.QASM: one qreg
// and the h, x, cx, ccx and mcx gates. creg, barrier, measure and comments
// are skipped.
func ParseQASM(src string) (*Circuit, error) {
	var c *Circuit
	reg := ""

	for lineNo, line := range strings.Split(src, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "OPENQASM") ||
			strings.HasPrefix(line, "include") ||
			strings.HasPrefix(line, "creg") ||
			strings.HasPrefix(line, "barrier") ||
			strings.HasPrefix(line, "measure") {
			continue
		}

		if matches := qregRegex.FindStringSubmatch(line); matches != nil {
			if c != nil {
				return nil, errors.Wrapf(ErrUnsupportedStatement, "line %d: second qreg", lineNo+1)
			}
			n, _ := strconv.Atoi(matches[2])
			var err error
			if c, err = NewCircuit("qasm", n); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo+1)
			}
			reg = matches[1]
			continue
		}

		matches := gateRegex.FindStringSubmatch(line)
		if matches == nil {
			return nil, errors.Wrapf(ErrUnsupportedStatement, "line %d: %q", lineNo+1, line)
		}
		if c == nil {
			return nil, errors.Wrapf(ErrUnsupportedStatement, "line %d: gate before qreg", lineNo+1)
		}

		var qubits []int
		for _, op := range operandRegex.FindAllStringSubmatch(matches[2], -1) {
			if op[1] != reg {
				return nil, errors.Wrapf(ErrUnsupportedStatement, "line %d: unknown register %q", lineNo+1, op[1])
			}
			q, _ := strconv.Atoi(op[2])
			qubits = append(qubits, q)
		}

		var g Gate
		name := strings.ToLower(matches[1])
		switch {
		case name == "h" && len(qubits) == 1:
			g = H(qubits[0])
		case name == "x" && len(qubits) == 1:
			g = X(qubits[0])
		case name == "cx" && len(qubits) == 2,
			name == "ccx" && len(qubits) == 3,
			name == "mcx" && len(qubits) >= 2:
			g = MCX(qubits[:len(qubits)-1], qubits[len(qubits)-1])
		default:
			return nil, errors.Wrapf(ErrUnsupportedStatement, "line %d: %s on %d qubits", lineNo+1, name, len(qubits))
		}
		if err := c.Add(g); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo+1)
		}
	}

	if c == nil {
		return nil, errors.Wrap(ErrUnsupportedStatement, "no qreg declaration")
	}
	return c, nil
}
