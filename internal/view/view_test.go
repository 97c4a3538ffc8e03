package view

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/meta77/grover/grover"
	"github.com/meta77/grover/quantum"
)

func TestCircuitGrid(t *testing.T) {
	c, err := quantum.NewCircuit("demo", 3)
	if err != nil {
		t.Fatalf("NewCircuit: %v", err)
	}
	if err := c.AddAll(quantum.H(0), quantum.X(1), quantum.MCX([]int{0}, 2)); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	out := Circuit(c, Cursor{Step: -1}, 120)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header + 3 lines per qubit
	if len(lines) != 1+3*3 {
		t.Fatalf("expected 10 lines, got %d:\n%s", len(lines), out)
	}
	for _, want := range []string{"q[0]", "q[1]", "q[2]", "┤  H  ├", "┤  X  ├", "●", "⊕", "┼"} {
		if !strings.Contains(out, want) {
			t.Errorf("circuit drawing missing %q:\n%s", want, out)
		}
	}

	// H and X share moment 0; the CX spans q[0]..q[2] in moment 1.
	mid := lines[1+3*1+1]
	if !strings.Contains(mid, "┼") {
		t.Errorf("q[1] should be crossed by the CX wire, got %q", mid)
	}

	for i, line := range lines[1:] {
		if w := lipgloss.Width(line); w != labelVisualW+2*cellW {
			t.Errorf("line %d: width %d, want %d", i+1, w, labelVisualW+2*cellW)
		}
	}
}

func TestCircuitCursorAndScroll(t *testing.T) {
	c, err := grover.Build("11", 1)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	out := Circuit(c, Cursor{Step: c.Depth() - 1, Qubit: 0}, labelVisualW+3*cellW)
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("cursor box missing:\n%s", out)
	}
	if !strings.Contains(out, "showing moments") {
		t.Errorf("expected scroll marker for a %d-moment circuit:\n%s", c.Depth(), out)
	}
}

func TestCircuitEmpty(t *testing.T) {
	c, err := quantum.NewCircuit("", 2)
	if err != nil {
		t.Fatalf("NewCircuit: %v", err)
	}
	out := Circuit(c, Cursor{}, 80)
	if strings.Count(out, "q[") != 2 {
		t.Errorf("expected two wires:\n%s", out)
	}
}

func TestAmplitudes(t *testing.T) {
	sv, err := quantum.NewStateVector(2)
	if err != nil {
		t.Fatalf("NewStateVector: %v", err)
	}
	if err := sv.Apply(quantum.H(0)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	out := Amplitudes(sv.Dump(), "01", 0)
	for _, want := range []string{"|00⟩", "|01⟩", "|10⟩", "|11⟩", "50.00%", "0.00%", "+0.7071"} {
		if !strings.Contains(out, want) {
			t.Errorf("amplitude table missing %q:\n%s", want, out)
		}
	}

	limited := Amplitudes(sv.Dump(), "", 2)
	if !strings.Contains(limited, "|00⟩") || !strings.Contains(limited, "|01⟩") {
		t.Errorf("most probable states should be kept:\n%s", limited)
	}
	if strings.Contains(limited, "|11⟩") {
		t.Errorf("zero-probability state should be dropped:\n%s", limited)
	}
	if !strings.Contains(limited, "2 more states") {
		t.Errorf("expected a hidden-row note:\n%s", limited)
	}
}

func TestHistogram(t *testing.T) {
	out := Histogram(quantum.Counts{"101": 800, "000": 24, "111": 200})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 3 bars and a total, got %d lines:\n%s", len(lines), out)
	}
	for i, bits := range []string{"000", "101", "111"} {
		if !strings.HasPrefix(ansi.Strip(lines[i]), bits) {
			t.Errorf("line %d: expected %s first, got %q", i, bits, lines[i])
		}
	}
	if !strings.Contains(lines[1], strings.Repeat("█", barW)) {
		t.Errorf("peak bar should be full width: %q", lines[1])
	}
	if !strings.Contains(lines[3], "1024 shots") {
		t.Errorf("total line: %q", lines[3])
	}

	if got := Histogram(quantum.Counts{}); !strings.Contains(got, "no shots") {
		t.Errorf("empty histogram: %q", got)
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		frac float64
		full int
	}{
		{0, 0},
		{0.5, 5},
		{1, 10},
		{1.7, 10},
		{-0.1, 0},
		{math.Nextafter(0.25, 0), 2},
	}
	for _, tt := range tests {
		got := strings.Count(bar(tt.frac, 10), "█")
		if got != tt.full {
			t.Errorf("bar(%v): %d full cells, want %d", tt.frac, got, tt.full)
		}
		if w := lipgloss.Width(bar(tt.frac, 10)); w != 10 {
			t.Errorf("bar(%v): width %d", tt.frac, w)
		}
	}
}

func TestReport(t *testing.T) {
	seed := int64(3)
	res, err := grover.Run(t.Context(), grover.Config{Qubits: 3, Target: "101", Shots: 256, Seed: &seed, Iterations: 1})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := Report(res, 8)
	for _, want := range []string{"after Init", "after Oracle #1", "after Diffuser #1", "measurements", "found 101", res.ID} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReportMarksOmittedStages(t *testing.T) {
	seed := int64(3)
	res, err := grover.Run(t.Context(), grover.Config{Qubits: 3, Target: "101", Shots: 64, Seed: &seed, Iterations: 3})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := Report(res, 8)
	gap := strings.Index(out, "… 3 stages not recorded")
	last := strings.Index(out, "after Diffuser #3")
	if gap < 0 || last < 0 || gap > last {
		t.Errorf("omitted stages should be noted before the final state:\n%s", out)
	}
	if strings.Contains(out, "after Oracle #2") {
		t.Errorf("iteration 2 should not be recorded by default")
	}
}

func TestOverlay(t *testing.T) {
	bg := "aaaaaaaa\nbbbbbbbb\ncccccccc"
	got := Overlay(bg, "XY\nZW", 3, 1)
	want := "aaaaaaaa\nbbbXYbbb\ncccZWccc"
	if got != want {
		t.Errorf("Overlay:\ngot  %q\nwant %q", got, want)
	}

	styled := Overlay(Dim.Render("........"), "[]", 2, 0)
	if w := lipgloss.Width(styled); w != 8 {
		t.Errorf("styled overlay width %d, want 8", w)
	}
	if !strings.Contains(styled, "[]") {
		t.Errorf("styled overlay lost the foreground: %q", styled)
	}

	short := Overlay("ab", "XY", 4, 0)
	if short != "ab  XY" {
		t.Errorf("overlay past the end: %q", short)
	}

	x, y := Center("abcd\nefgh", 10, 6)
	if x != 3 || y != 2 {
		t.Errorf("Center = (%d, %d), want (3, 2)", x, y)
	}
}
