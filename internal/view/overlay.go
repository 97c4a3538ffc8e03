package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay composites fg on top of bg with its top-left corner at column x,
// line y. Both may carry ANSI styling.
func Overlay(bg, fg string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(bgLines) {
			continue
		}
		bgLines[row] = spliceLine(bgLines[row], line, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLine replaces the visible columns of bg starting at x with fg.
func spliceLine(bg, fg string, x int) string {
	left := ansi.Truncate(bg, x, "")
	if w := lipgloss.Width(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	right := ansi.TruncateLeft(bg, x+lipgloss.Width(fg), "")
	return left + fg + right
}

// Center returns the position that centres fg within a width x height area.
func Center(fg string, width, height int) (x, y int) {
	w, h := lipgloss.Size(fg)
	return max((width-w)/2, 0), max((height-h)/2, 0)
}
