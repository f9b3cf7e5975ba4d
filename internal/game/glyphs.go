package game

import (
	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/sokoban"
)

// cellWidth is how many screen columns one grid cell occupies.
const cellWidth = 2

// Glyph is how a grid symbol is drawn: up to cellWidth runes and a color.
type Glyph struct {
	Text  string
	Color core.Color
}

// Glyphs maps grid symbols to their on-screen glyphs.
type Glyphs map[sokoban.Cell]Glyph

var defaultGlyphs = Glyphs{
	sokoban.Wall:        {Text: "██", Color: core.ColorSlate},
	sokoban.Floor:       {Text: "  ", Color: core.ColorDefault},
	sokoban.Target:      {Text: "()", Color: core.ColorBrightYellow},
	sokoban.Box:         {Text: "[]", Color: core.ColorBrown},
	sokoban.BoxOnTarget: {Text: "[]", Color: core.ColorBrightGreen},
	sokoban.Player:      {Text: "@@", Color: core.ColorBrightBlue},
	sokoban.Void:        {Text: "  ", Color: core.ColorDefault},
}

// DefaultGlyphs returns a copy of the built-in glyph set.
func DefaultGlyphs() Glyphs {
	out := make(Glyphs, len(defaultGlyphs))
	for k, v := range defaultGlyphs {
		out[k] = v
	}
	return out
}

// For returns the glyph for c. Missing or empty entries fall back to the
// built-in set, and unknown symbols are drawn as themselves.
func (g Glyphs) For(c sokoban.Cell) Glyph {
	if gl, ok := g[c]; ok && gl.Text != "" {
		return gl
	}
	if gl, ok := defaultGlyphs[c]; ok {
		return gl
	}
	return Glyph{Text: string(rune(c)), Color: core.ColorDefault}
}

// Merge returns g with entries from override replacing matching symbols.
func (g Glyphs) Merge(override Glyphs) Glyphs {
	out := make(Glyphs, len(g)+len(override))
	for k, v := range g {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
