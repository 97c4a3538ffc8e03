package view

import (
	"fmt"
	"strings"

	"github.com/meta77/grover/quantum"
)

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// gateDisplayName returns the boxed label of a single-wire gate.
func gateDisplayName(g quantum.Gate) string {
	if g.Kind == quantum.MultiControlledX {
		return "X"
	}
	return g.Kind.String()
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	gate        *quantum.Gate
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
}

// grid lays the circuit out as grid[moment][qubit].
func grid(c *quantum.Circuit) [][]cellInfo {
	gates := c.Gates()
	moments := c.Moments()
	cells := make([][]cellInfo, len(moments))
	for step, idxs := range moments {
		cells[step] = make([]cellInfo, c.NumQubits())
		for _, i := range idxs {
			g := &gates[i]
			ctrls := g.Controls()
			if len(ctrls) == 0 {
				cells[step][g.Target] = cellInfo{gate: g}
				continue
			}
			lo, hi := g.Target, g.Target
			for _, ctrl := range ctrls {
				lo, hi = min(lo, ctrl), max(hi, ctrl)
				cells[step][ctrl].isControl = true
			}
			cells[step][g.Target].isTarget = true
			for q := lo; q <= hi; q++ {
				info := &cells[step][q]
				info.gate = g
				info.vertAbove = q > lo
				info.vertBelow = q < hi
				info.passThrough = !info.isControl && !info.isTarget
			}
		}
	}
	return cells
}

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo, cursor bool) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)

	if cursor {
		innerW := cellW - 2
		dashL := (innerW - 1) / 2
		dashR := innerW - dashL - 1
		wire := func(sym string) string {
			return cursorBoxStyle.Render("║") + strings.Repeat("─", dashL) + sym + strings.Repeat("─", dashR) + cursorBoxStyle.Render("║")
		}

		top = cursorBoxStyle.Render("╔" + strings.Repeat("═", innerW) + "╗")
		bot = cursorBoxStyle.Render("╚" + strings.Repeat("═", innerW) + "╝")
		switch {
		case info.isControl:
			mid = wire(gateStyle.Render("●"))
		case info.isTarget:
			mid = wire(gateStyle.Render("⊕"))
		case info.passThrough:
			mid = wire("┼")
		case info.gate != nil:
			name := padCenter(gateDisplayName(*info.gate), gateNameW)
			mid = cursorBoxStyle.Render("║") + "─┤" + gateStyle.Render(name) + "├─" + cursorBoxStyle.Render("║")
		default:
			mid = cursorBoxStyle.Render("║") + strings.Repeat("─", innerW) + cursorBoxStyle.Render("║")
		}
		return
	}

	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1
	top, bot = emptyRow, emptyRow
	if info.vertAbove {
		top = vertRow
	}
	if info.vertBelow {
		bot = vertRow
	}

	switch {
	case info.isControl:
		mid = strings.Repeat("─", dashL) + gateStyle.Render("●") + strings.Repeat("─", dashR)
	case info.isTarget:
		mid = strings.Repeat("─", dashL) + gateStyle.Render("⊕") + strings.Repeat("─", dashR)
	case info.passThrough:
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
	case info.gate != nil:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateDisplayName(*info.gate), gateNameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	default:
		mid = strings.Repeat("─", cellW)
	}
	return
}

// Cursor is the highlighted cell of a circuit drawing. A negative Step
// highlights nothing.
type Cursor struct {
	Step  int
	Qubit int
}

// Circuit draws c as a grid with one column per moment, scrolled so the
// cursor column stays visible within width. Qubit 0 is the top wire.
func Circuit(c *quantum.Circuit, cur Cursor, width int) string {
	var sb strings.Builder

	cells := grid(c)
	maxSteps := max((width-labelVisualW)/cellW, 1)
	startStep := 0
	if cur.Step >= maxSteps {
		startStep = cur.Step - maxSteps + 1
	}
	endStep := min(startStep+maxSteps, len(cells))

	if startStep > 0 {
		fmt.Fprintf(&sb, "  ◀ showing moments %d–%d\n", startStep, endStep-1)
	}

	header := strings.Repeat(" ", labelVisualW)
	for step := startStep; step < endStep; step++ {
		header += Dim.Render(padCenter(fmt.Sprintf("%d", step), cellW))
	}
	sb.WriteString(header + "\n")

	for qubit := range c.NumQubits() {
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q[%d]", qubit))) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for step := startStep; step < endStep; step++ {
			top, mid, bot := renderCell(cells[step][qubit], step == cur.Step && qubit == cur.Qubit)
			topLine += top
			midLine += mid
			botLine += bot
		}
		if endStep == startStep {
			midLine += strings.Repeat("─", cellW)
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}
	return sb.String()
}
