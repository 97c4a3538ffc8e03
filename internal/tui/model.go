// Package tui is an interactive bubbletea explorer for Grover circuits: a
// circuit grid with a moment cursor, the state vector after that moment, an
// OpenQASM editor and on-demand sampling.
package tui

import (
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/meta77/grover/grover"
	"github.com/meta77/grover/quantum"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusQASM
	focusMenu
	focusSelectTarget
	focusTarget
)

// Options configures the explorer.
type Options struct {
	Config   grover.Config
	SavePath string // where ctrl+s writes the circuit as OpenQASM
	Logger   *zap.Logger
}

// Model represents the explorer state. The circuit is the single source of
// truth; the QASM editor and state panel are derived from it.
type Model struct {
	circuit    *quantum.Circuit
	target     string
	iterations int
	shots      int
	sampler    *quantum.Sampler
	savePath   string
	log        *zap.Logger

	cursorQubit int
	cursorStep  int
	width       int
	height      int

	qasmEditor  textarea.Model
	lastQASM    string
	qasmErr     error
	targetInput textinput.Model
	focus       focus
	statusMsg   string

	sv     *quantum.StateVector
	counts quantum.Counts

	// Menu state
	menuCat  int
	menuItem int

	// CNOT awaiting its target; the control is the cursor qubit.
	targetQubit int
}

// New returns an explorer showing the full search circuit for opts.Config.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return Model{}, errors.Wrap(err, "explorer config")
	}
	seed := time.Now().UnixNano()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}
	log := opts.Logger
	if log == nil {
		log = zap.L()
	}

	ta := textarea.New()
	ta.Placeholder = "Edit QASM here..."
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.KeyMap.InsertNewline.SetEnabled(true)

	ti := textinput.New()
	ti.Placeholder = cfg.Target
	ti.CharLimit = quantum.MaxQubits
	ti.Width = quantum.MaxQubits + 2

	m := Model{
		target:      cfg.Target,
		iterations:  cfg.Iterations,
		shots:       cfg.Shots,
		sampler:     quantum.NewSampler(seed),
		savePath:    opts.SavePath,
		log:         log,
		qasmEditor:  ta,
		targetInput: ti,
		focus:       focusCircuit,
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// rebuild replaces the circuit with the search circuit for the current
// target and iteration count, and parks the cursor on the last moment.
func (m *Model) rebuild() error {
	c, err := grover.Build(m.target, m.iterations)
	if err != nil {
		return err
	}
	m.circuit = c
	m.cursorStep = c.Depth() - 1
	m.syncEditor()
	m.clampCursor()
	m.refreshState()
	return nil
}

// setCircuit installs c and re-derives the editor text.
func (m *Model) setCircuit(c *quantum.Circuit) {
	m.circuit = c
	m.syncEditor()
	m.clampCursor()
	m.refreshState()
}

func (m *Model) syncEditor() {
	qasm := m.circuit.QASM()
	m.qasmEditor.SetValue(qasm)
	m.lastQASM = qasm
	m.qasmErr = nil
}

func (m *Model) clampCursor() {
	m.cursorQubit = max(0, min(m.cursorQubit, m.circuit.NumQubits()-1))
	m.cursorStep = max(0, min(m.cursorStep, m.circuit.Depth()-1))
}

// parseQASMInput re-parses the editor after an edit. A parse error is shown
// in the editor panel and the last good circuit stays in place.
func (m *Model) parseQASMInput() {
	qasm := m.qasmEditor.Value()
	if qasm == m.lastQASM {
		return
	}
	m.lastQASM = qasm
	c, err := quantum.ParseQASM(qasm)
	if err != nil {
		m.qasmErr = err
		return
	}
	m.qasmErr = nil
	m.circuit = c
	m.clampCursor()
	m.refreshState()
}

// prefix returns the gates drawn in moments 0..step, in circuit order.
// Moments are ASAP layers, so this set is closed under dependencies and
// applying it gives the state "after" the cursor column.
func prefix(c *quantum.Circuit, step int) []quantum.Gate {
	moments := c.Moments()
	var idxs []int
	for s := 0; s <= step && s < len(moments); s++ {
		idxs = append(idxs, moments[s]...)
	}
	slices.Sort(idxs)

	gates := c.Gates()
	out := make([]quantum.Gate, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, gates[i])
	}
	return out
}

// refreshState recomputes the state vector after the cursor moment.
func (m *Model) refreshState() {
	m.counts = nil
	n := m.circuit.NumQubits()
	c, err := quantum.NewCircuit(m.circuit.Name(), n)
	if err == nil {
		err = c.AddAll(prefix(m.circuit, m.cursorStep)...)
	}
	var sim *quantum.Simulator
	if err == nil {
		sim, err = quantum.NewSimulator(n, quantum.WithLogger(m.log))
	}
	if err == nil {
		err = sim.Apply(c)
	}
	if err != nil {
		m.log.Error("failed to evolve state", zap.Error(err))
		m.statusMsg = err.Error()
		m.sv = nil
		return
	}
	m.sv = sim.StateVector()
}

// sample measures the displayed state.
func (m *Model) sample() {
	if m.sv == nil {
		m.statusMsg = "no state to sample"
		return
	}
	counts, err := m.sampler.Sample(m.sv, m.shots)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.counts = counts
	top, n := counts.Top()
	m.statusMsg = "sampled " + top
	m.log.Debug("sampled explorer state",
		zap.Int("moment", m.cursorStep),
		zap.String("top", top),
		zap.Int("count", n),
	)
}

// appendGates adds gates to the end of the circuit and moves the cursor to
// the last moment.
func (m *Model) appendGates(gates ...quantum.Gate) {
	if err := m.circuit.AddAll(gates...); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.afterEdit()
}

func (m *Model) appendCircuit(sub *quantum.Circuit, err error) {
	if err == nil {
		err = m.circuit.Append(sub)
	}
	if err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = "added " + sub.Name()
	m.afterEdit()
}

func (m *Model) afterEdit() {
	m.syncEditor()
	m.cursorStep = max(m.circuit.Depth()-1, 0)
	m.refreshState()
}

// deleteAtCursor removes the gate drawn at the cursor cell, if any.
func (m *Model) deleteAtCursor() {
	moments := m.circuit.Moments()
	if m.cursorStep >= len(moments) {
		return
	}
	gates := m.circuit.Gates()
	for _, i := range moments[m.cursorStep] {
		qs := gates[i].Qubits()
		if m.cursorQubit < slices.Min(qs) || m.cursorQubit > slices.Max(qs) {
			continue
		}
		c, err := quantum.NewCircuit(m.circuit.Name(), m.circuit.NumQubits())
		if err == nil {
			err = c.AddAll(slices.Delete(gates, i, i+1)...)
		}
		if err != nil {
			m.statusMsg = err.Error()
			return
		}
		m.setCircuit(c)
		return
	}
}

// setTarget validates a bitstring typed into the target prompt and rebuilds
// the search circuit for it.
func (m *Model) setTarget(bits string) {
	if bits == "" || len(bits) > quantum.MaxQubits {
		m.statusMsg = errors.Wrapf(quantum.ErrInvalidTarget, "%q", bits).Error()
		return
	}
	if _, err := quantum.ParseBits(bits, len(bits)); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.target = bits
	if err := m.rebuild(); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = "searching for " + bits
}

func (m *Model) setIterations(k int) {
	if k < 0 {
		return
	}
	m.iterations = k
	if err := m.rebuild(); err != nil {
		m.statusMsg = err.Error()
	}
}

func (m *Model) save() {
	if m.savePath == "" {
		m.statusMsg = "no save path"
		return
	}
	if err := os.WriteFile(m.savePath, []byte(m.circuit.QASM()), 0o644); err != nil {
		m.statusMsg = "Save error: " + err.Error()
		return
	}
	m.statusMsg = "Saved " + m.savePath
}

func (m Model) Init() tea.Cmd {
	return nil
}
