package view

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/meta77/grover/quantum"
)

func bar(frac float64, width int) string {
	n := int(math.Round(frac * float64(width)))
	n = max(0, min(n, width))
	return barStyle.Render(strings.Repeat("█", n)) + Dim.Render(strings.Repeat("·", width-n))
}

// Amplitudes renders a state dump as a table of basis states with their
// amplitude, probability and a bar. When there are more than maxRows states
// only the most probable are listed, still in index order. The row whose
// bitstring equals marked is highlighted.
func Amplitudes(amps []quantum.Amplitude, marked string, maxRows int) string {
	rows := amps
	if maxRows > 0 && len(amps) > maxRows {
		rows = append([]quantum.Amplitude(nil), amps...)
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Probability > rows[j].Probability
		})
		rows = rows[:maxRows]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })
	}

	var sb strings.Builder
	for _, a := range rows {
		label := qubitLabelStyle.Render("|" + a.Bits + "⟩")
		if a.Bits == marked {
			label = markedStyle.Render("|" + a.Bits + "⟩")
		}
		amp := fmt.Sprintf("%+.4f%+.4fi", a.Real, a.Imag)
		if a.Real < 0 {
			amp = negativeStyle.Render(amp)
		}
		fmt.Fprintf(&sb, "%s  %s  %s %6.2f%%\n", label, amp, bar(a.Probability, barW), 100*a.Probability)
	}
	if hidden := len(amps) - len(rows); hidden > 0 {
		sb.WriteString(Dim.Render(fmt.Sprintf("… %d more states", hidden)) + "\n")
	}
	return sb.String()
}

// Histogram renders measurement counts as horizontal bars in bitstring order,
// scaled to the most frequent outcome.
func Histogram(counts quantum.Counts) string {
	total := counts.Total()
	if total == 0 {
		return Dim.Render("no shots") + "\n"
	}
	top, peak := counts.Top()

	var sb strings.Builder
	for _, bits := range counts.Keys() {
		n := counts[bits]
		label := qubitLabelStyle.Render(bits)
		if bits == top {
			label = markedStyle.Render(bits)
		}
		fmt.Fprintf(&sb, "%s  %s %5d  %6.2f%%\n", label, bar(float64(n)/float64(peak), barW), n, 100*float64(n)/float64(total))
	}
	fmt.Fprintf(&sb, "%s\n", Dim.Render(fmt.Sprintf("%d shots", total)))
	return sb.String()
}
