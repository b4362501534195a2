package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Vercel-inspired color palette
var (
	// Base colors
	colorFg        = lipgloss.Color("#EDEDED")
	colorMuted     = lipgloss.Color("#666666")
	colorBorder    = lipgloss.Color("#333333")
	colorHighlight = lipgloss.Color("#0070F3") // Vercel blue

	// Status colors
	colorActive  = lipgloss.Color("#50E3C2") // Teal/cyan for active flags
	colorWarning = lipgloss.Color("#F5A623") // Orange for stale data
)

// Layout styles
var (
	// Main container with border
	containerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	// Header style
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg).
			Padding(0, 1)

	// The big reading headline
	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorHighlight)

	// Field labels in the meter info panel
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Field values in the meter info panel
	fieldStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Muted/hint text
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	// Active status flag badge
	flagOnStyle = lipgloss.NewStyle().
			Foreground(colorActive).
			Bold(true)

	// Stale-data notice
	waitingStyle = lipgloss.NewStyle().
			Foreground(colorWarning)
)

// sparkRunes covers eight vertical levels, lowest first
var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderFlag shows an active flag as a bright badge and an inactive
// one as a muted placeholder, so the panel layout never jumps around.
func renderFlag(label, placeholder string) string {
	if label != "" {
		return flagOnStyle.Render(label)
	}
	return mutedStyle.Render(placeholder)
}

// renderSparkline maps the value window onto block runes, newest on
// the right, clipped to the given width.
func renderSparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return waitingStyle.Render("waiting for samples…")
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	span := hi - lo

	var b strings.Builder
	for _, v := range values {
		idx := 0
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkRunes)-1))
		}
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}
