package view

import (
	"fmt"
	"strings"

	"github.com/meta77/grover/grover"
)

// Report renders a finished run the way the run command prints it: the state
// after each stage, the histogram, then a short summary.
func Report(res *grover.Result, maxRows int) string {
	var sb strings.Builder
	for i, st := range res.Stages {
		// Unrecorded stages always sit just before the final state.
		if i == len(res.Stages)-1 && res.Omitted > 0 {
			sb.WriteString(Dim.Render(fmt.Sprintf("… %d stages not recorded", res.Omitted)) + "\n\n")
		}
		name := st.Name
		if st.Iteration > 0 {
			name = fmt.Sprintf("%s #%d", st.Name, st.Iteration)
		}
		sb.WriteString(Title.Render("after "+name) + "\n")
		sb.WriteString(Amplitudes(st.State, res.Target, maxRows))
		sb.WriteString("\n")
	}
	sb.WriteString(Title.Render("measurements") + "\n")
	sb.WriteString(Histogram(res.Counts))
	sb.WriteString("\n")
	sb.WriteString(Summary(res))
	return sb.String()
}

// Summary lists the run parameters next to the exact and observed success
// rates.
func Summary(res *grover.Result) string {
	top, _ := res.Counts.Top()
	rows := [][2]string{
		{"run", res.ID},
		{"target", res.Target},
		{"qubits", fmt.Sprintf("%d", res.Qubits)},
		{"iterations", fmt.Sprintf("%d", res.Iterations)},
		{"shots", fmt.Sprintf("%d", res.Shots)},
		{"seed", fmt.Sprintf("%d", res.Seed)},
		{"exact", fmt.Sprintf("%.6f", res.Probability)},
		{"theory", fmt.Sprintf("%.6f", res.Theoretical)},
		{"observed", fmt.Sprintf("%.6f", res.Counts.Probability(res.Target))},
		{"most frequent", top},
	}

	var sb strings.Builder
	for _, r := range rows {
		fmt.Fprintf(&sb, "%s %s\n", Accent.Render(fmt.Sprintf("%-14s", r[0])), r[1])
	}
	if top == res.Target {
		sb.WriteString(markedStyle.Render("found "+res.Target) + "\n")
	} else {
		sb.WriteString(Error.Render("target was not the most frequent outcome") + "\n")
	}
	return sb.String()
}
