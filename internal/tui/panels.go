package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/meta77/grover/internal/view"
)

const helpHeight = 4

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	qasmWidth := m.width / 3
	leftWidth := m.width - qasmWidth - 4
	bodyHeight := max(m.height-helpHeight-4, 12)
	circuitHeight := bodyHeight / 2
	stateHeight := bodyHeight - circuitHeight - 2

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCircuitPanel(leftWidth, circuitHeight),
		m.renderStatePanel(leftWidth, stateHeight),
	)
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderQASMPanel(qasmWidth, bodyHeight))
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, m.renderHelpPanel(m.width-4, helpHeight-2))

	switch m.focus {
	case focusMenu:
		frame = view.Overlay(frame, m.renderMenu(), 2, 2)
	case focusTarget:
		frame = view.Overlay(frame, m.renderTargetPrompt(), 2, 2)
	}
	return frame
}

// renderCircuitPanel renders the circuit grid with its status line.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(view.Title.Render("Circuit " + m.circuit.Name()))
	sb.WriteString("\n\n")
	sb.WriteString(view.Circuit(m.circuit, view.Cursor{Step: m.cursorStep, Qubit: m.cursorQubit}, width-4))

	if m.focus == focusSelectTarget {
		fmt.Fprintf(&sb, "\n  %s", view.Accent.Render("CNOT"))
		fmt.Fprintf(&sb, "  control q[%d]  target: %s", m.cursorQubit, view.Selected.Render(fmt.Sprintf("q[%d]", m.targetQubit)))
		sb.WriteString(view.Dim.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	} else {
		fmt.Fprintf(&sb, "\n  Moment %d/%d, Qubit %d  │  target %s  iterations %d",
			m.cursorStep, m.circuit.Depth(), m.cursorQubit, m.target, m.iterations)
		if m.statusMsg != "" {
			fmt.Fprintf(&sb, "  │  %s", view.Accent.Render(m.statusMsg))
		}
	}

	return view.CircuitPanel.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel shows the amplitudes after the cursor moment and the last
// sample, if any.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(view.Title.Render(fmt.Sprintf("State after moment %d", m.cursorStep)))
	sb.WriteString("\n\n")
	rows := max(height-4, 2)
	if m.counts != nil {
		rows = max(rows/2, 2)
	}
	if m.sv != nil {
		sb.WriteString(view.Amplitudes(m.sv.Dump(), m.target, rows))
	}
	if m.counts != nil {
		sb.WriteString("\n")
		sb.WriteString(view.Title.Render(fmt.Sprintf("Measured %d shots", m.counts.Total())))
		sb.WriteString("\n")
		sb.WriteString(view.Histogram(m.counts))
	}

	return view.StatePanel.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the QASM editor panel.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	title := "OpenQASM"
	if m.focus == focusQASM {
		title += " [ACTIVE]"
	}
	sb.WriteString(view.Title.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmEditor.View())
	if m.qasmErr != nil {
		sb.WriteString("\n")
		sb.WriteString(view.Error.Render(m.qasmErr.Error()))
	}

	return view.QASMPanel.Width(width).Height(height).Render(sb.String())
}

// renderHelpPanel renders the bottom key reference.
func (m Model) renderHelpPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(view.Accent.Render("Navigate: "))
	sb.WriteString("↑↓/jk Qubit  ←→/hl Moment  g/G First/Last  +/- Iterations  t Target")
	sb.WriteString("\n")
	sb.WriteString(view.Accent.Render("Actions:  "))
	sb.WriteString("a Add  s Sample  Bksp Delete  Tab QASM  ^R Clear  ^S Save  q Quit")

	return view.HelpPanel.Width(width).Height(height).Render(sb.String())
}

func (m Model) renderTargetPrompt() string {
	var sb strings.Builder
	sb.WriteString(view.Title.Render("Search Target"))
	sb.WriteString("\n\n")
	sb.WriteString(m.targetInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(view.Dim.Render("Bitstring, qubit 0 last. ⏎ Ok  Esc ✕"))
	return view.MenuPanel.Render(sb.String())
}
