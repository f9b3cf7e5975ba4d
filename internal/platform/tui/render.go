package tui

import (
	"strings"

	"github.com/vovakirdan/boxpush/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-coloured cells in a row is styled once.
func RenderScreen(s *core.Screen, theme Theme) string {
	var out strings.Builder
	out.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			out.WriteByte('\n')
		}

		runColor := s.GetCell(0, y).Color
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				out.WriteString(theme.style(runColor).Render(run.String()))
				run.Reset()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		out.WriteString(theme.style(runColor).Render(run.String()))
		run.Reset()
	}
	return out.String()
}

// centerText pads text on the left so it sits centred in width columns.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
