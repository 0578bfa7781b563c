package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/f1race/internal/core"
)

// palette holds the style of every core.Color, indexed by color.
var palette = [core.NumColors]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorGreen:       fg("28"),
	core.ColorGray:        fg("240"),
	core.ColorBrightWhite: fg("15"),

	core.ColorBrightRed:    fg("196").Bold(true),
	core.ColorOrange:       fg("208").Bold(true),
	core.ColorBrightYellow: fg("226"),
	core.ColorRed:          fg("160"),

	core.ColorBlue:        fg("33"),
	core.ColorCyan:        fg("37"),
	core.ColorMagenta:     fg("170"),
	core.ColorYellow:      fg("178"),
	core.ColorWhite:       fg("252"),
	core.ColorBrightGreen: fg("118"),
	core.ColorBrightCyan:  fg("51"),
}

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// styleFor returns the style of c, or the default style for unknown colors.
func styleFor(c core.Color) lipgloss.Style {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				if cell.Rune != core.WideTail {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
