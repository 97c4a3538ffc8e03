package tui

import (
	"fmt"
	"strings"

	"github.com/meta77/grover/grover"
	"github.com/meta77/grover/internal/view"
	"github.com/meta77/grover/quantum"
)

type menuAction int

const (
	addH menuAction = iota
	addX
	addCX
	addMCX
	addUniform
	addOracle
	addDiffuser
	addIteration
)

// menuItem represents a single choice in the menu.
type menuItem struct {
	name        string
	symbol      string
	action      menuAction
	needsTarget bool
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the picker categories and items.
var gateMenu = []menuCategory{
	{
		name: "Gates",
		items: []menuItem{
			{name: "Hadamard", symbol: "H", action: addH},
			{name: "Pauli-X (NOT)", symbol: "X", action: addX},
			{name: "CNOT", symbol: "●─⊕", action: addCX, needsTarget: true},
			{name: "Multi-ctrl X", symbol: "●─●─⊕", action: addMCX},
		},
	},
	{
		name: "Grover",
		items: []menuItem{
			{name: "Superposition", symbol: grover.InitName, action: addUniform},
			{name: "Oracle", symbol: grover.OracleName, action: addOracle},
			{name: "Diffuser", symbol: grover.DiffuserName, action: addDiffuser},
			{name: "Iteration", symbol: "O+D", action: addIteration},
		},
	},
}

// choose runs the selected menu item against the cursor qubit.
func (m *Model) choose(item menuItem) {
	n := m.circuit.NumQubits()
	q := m.cursorQubit
	m.focus = focusCircuit

	switch item.action {
	case addH:
		m.appendGates(quantum.H(q))
	case addX:
		m.appendGates(quantum.X(q))
	case addCX:
		if n < 2 {
			m.statusMsg = "CNOT needs two qubits"
			return
		}
		m.targetQubit = q + 1
		if m.targetQubit >= n {
			m.targetQubit = q - 1
		}
		m.focus = focusSelectTarget
	case addMCX:
		if n < 2 {
			m.statusMsg = "MCX needs two qubits"
			return
		}
		var controls []int
		for c := range n {
			if c != q {
				controls = append(controls, c)
			}
		}
		m.appendGates(quantum.MCX(controls, q))
	case addUniform:
		m.appendCircuit(grover.Uniform(n))
	case addOracle:
		if !m.targetFits() {
			return
		}
		m.appendCircuit(grover.Oracle(m.target))
	case addDiffuser:
		m.appendCircuit(grover.Diffuser(n))
	case addIteration:
		if !m.targetFits() {
			return
		}
		m.appendCircuit(grover.Iteration(m.target))
	}
}

func (m *Model) targetFits() bool {
	if len(m.target) != m.circuit.NumQubits() {
		m.statusMsg = fmt.Sprintf("target %s does not fit %d qubits (t to change)", m.target, m.circuit.NumQubits())
		return false
	}
	return true
}

// renderMenu renders the floating picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(view.Title.Render("Add"))
	sb.WriteString("\n")

	// Category tabs
	for i, cat := range gateMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(view.Accent.Render(name))
		} else {
			sb.WriteString(view.Dim.Render(name))
		}
		if i < len(gateMenu)-1 {
			sb.WriteString(view.Dim.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(view.Dim.Render(strings.Repeat("─", 34)))
	sb.WriteString("\n")

	cat := gateMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(view.Selected.Render(" ▸ "))
			sb.WriteString(view.Selected.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(view.Accent.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(view.Normal.Render(fmt.Sprintf("%-16s", item.name)))
			sb.WriteString(view.Dim.Render(item.symbol))
		}
		if item.needsTarget {
			sb.WriteString(view.Dim.Render(" →target"))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(view.Dim.Render(" ↑↓ Select  ←→ Tab  ⏎ Ok  Esc ✕"))

	return view.MenuPanel.Render(sb.String())
}
