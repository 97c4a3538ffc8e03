package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/meta77/grover/quantum"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.qasmEditor.SetWidth(max(msg.Width/3-6, 20))
		m.qasmEditor.SetHeight(max(msg.Height-helpHeight-12, 4))

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusQASM
				cmds = append(cmds, m.qasmEditor.Focus())
			case "ctrl+r":
				c, err := quantum.NewCircuit("empty", m.circuit.NumQubits())
				if err != nil {
					m.statusMsg = err.Error()
					break
				}
				m.setCircuit(c)
			case "ctrl+s":
				m.save()
			case "up", "k":
				if m.cursorQubit > 0 {
					m.cursorQubit--
				}
			case "down", "j":
				if m.cursorQubit < m.circuit.NumQubits()-1 {
					m.cursorQubit++
				}
			case "left", "h":
				if m.cursorStep > 0 {
					m.cursorStep--
					m.refreshState()
				}
			case "right", "l":
				if m.cursorStep < m.circuit.Depth()-1 {
					m.cursorStep++
					m.refreshState()
				}
			case "home", "g":
				m.cursorStep = 0
				m.refreshState()
			case "end", "G":
				m.cursorStep = max(m.circuit.Depth()-1, 0)
				m.refreshState()
			case "+", "=":
				m.setIterations(m.iterations + 1)
			case "-":
				m.setIterations(m.iterations - 1)
			case "s":
				m.sample()
			case "t":
				m.focus = focusTarget
				m.targetInput.SetValue("")
				cmds = append(cmds, m.targetInput.Focus())
			case "a":
				m.focus = focusMenu
				m.menuCat = 0
				m.menuItem = 0
			case "backspace", "delete":
				m.deleteAtCursor()
			}

		case focusQASM:
			if key == "tab" || key == "esc" {
				m.focus = focusCircuit
				m.qasmEditor.Blur()
				break
			}
			var cmd tea.Cmd
			m.qasmEditor, cmd = m.qasmEditor.Update(msg)
			cmds = append(cmds, cmd)
			m.parseQASMInput()

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(gateMenu[m.menuCat].items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(gateMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "enter":
				m.choose(gateMenu[m.menuCat].items[m.menuItem])
			}

		case focusSelectTarget:
			n := m.circuit.NumQubits()
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				for t := m.targetQubit - 1; t >= 0; t-- {
					if t != m.cursorQubit {
						m.targetQubit = t
						break
					}
				}
			case "down", "j":
				for t := m.targetQubit + 1; t < n; t++ {
					if t != m.cursorQubit {
						m.targetQubit = t
						break
					}
				}
			case "enter":
				m.focus = focusCircuit
				m.appendGates(quantum.MCX([]int{m.cursorQubit}, m.targetQubit))
			}

		case focusTarget:
			switch key {
			case "esc":
				m.focus = focusCircuit
				m.targetInput.Blur()
			case "enter":
				m.focus = focusCircuit
				m.targetInput.Blur()
				m.setTarget(strings.TrimSpace(m.targetInput.Value()))
			default:
				var cmd tea.Cmd
				m.targetInput, cmd = m.targetInput.Update(msg)
				cmds = append(cmds, cmd)
			}
		}

	default:
		if m.focus == focusQASM {
			var cmd tea.Cmd
			m.qasmEditor, cmd = m.qasmEditor.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}
