package game

import (
	"fmt"

	"github.com/vovakirdan/boxpush/internal/core"
)

// Rows reserved above and below the board area.
const (
	hudHeight    = 3
	footerHeight = 3
)

// Render draws the session snapshot centred on dst.
func Render(dst *core.Screen, snap Snapshot, glyphs Glyphs) {
	dst.Clear()

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight-footerHeight)
	boardW := snap.Width * cellWidth
	boardH := snap.Height
	if !area.Fits(boardW+2, boardH+2) {
		renderTooSmall(dst)
		return
	}
	board := area.Centered(boardW, boardH)

	renderHUD(dst, snap)
	dst.DrawFrame(board.Grow(1), core.ColorGray)
	renderBoard(dst, snap, glyphs, board.X, board.Y)
	renderFooter(dst, snap, board.Bottom()+1)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the level title and counters.
func renderHUD(dst *core.Screen, snap Snapshot) {
	title := fmt.Sprintf("Level %d/%d: %s", snap.Level, snap.LevelCount, snap.LevelName)
	dst.DrawTextCentered(0, title)

	info := fmt.Sprintf("Steps: %d   Boxes left: %d", snap.Steps, snap.Boxes)
	if snap.Muted {
		info += "   [muted]"
	}
	dst.DrawTextCentered(1, info)
}

// renderBoard draws the grid, cellWidth columns per cell.
func renderBoard(dst *core.Screen, snap Snapshot, glyphs Glyphs, x0, y0 int) {
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			gl := glyphs.For(snap.Cell(x, y))
			col := 0
			for _, r := range gl.Text {
				if col >= cellWidth {
					break
				}
				dst.SetColored(x0+x*cellWidth+col, y0+y, r, gl.Color)
				col++
			}
		}
	}
}

// renderFooter draws the clear banner and the controls line.
func renderFooter(dst *core.Screen, snap Snapshot, y int) {
	if c := snap.LastClear; c != nil {
		msg := fmt.Sprintf("Level %d cleared in %d steps!", c.Level, c.Steps)
		x := (dst.Width() - len([]rune(msg))) / 2
		dst.DrawTextColored(x, y, msg, core.ColorBrightGreen)
	}

	dst.DrawTextCentered(dst.Height()-1, "Arrows/WASD move  R reset  M mute  Q quit")
}
