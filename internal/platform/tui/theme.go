package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxpush/internal/config"
	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/game"
	"github.com/vovakirdan/boxpush/internal/sokoban"
)

// Theme contains the visual styles for the board and menus.
type Theme struct {
	// Palette maps screen cell colors to terminal styles.
	Palette map[core.Color]lipgloss.Style

	// Menu and records styles
	Title       lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Help        lipgloss.Style
	Border      lipgloss.Color
	HighlightFg lipgloss.Color
	HighlightBg lipgloss.Color
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Style{
			core.ColorDefault:       lipgloss.NewStyle(),
			core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
			core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
			core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
			core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
			core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ColorSlate:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),  // Slate blue-gray
			core.ColorBrown:         lipgloss.NewStyle().Foreground(lipgloss.Color("130")), // Crate brown
		},

		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:      lipgloss.Color("240"),
		HighlightFg: lipgloss.Color("229"),
		HighlightBg: lipgloss.Color("57"),
	}
}

// MonochromeTheme returns a grayscale theme for limited terminals.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	gray := map[core.Color]string{
		core.ColorSlate:        "240",
		core.ColorBrown:        "250",
		core.ColorBrightGreen:  "255",
		core.ColorBrightYellow: "245",
		core.ColorBrightBlue:   "255",
	}
	palette := make(map[core.Color]lipgloss.Style, len(theme.Palette))
	for c := range theme.Palette {
		if code, ok := gray[c]; ok {
			palette[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		} else {
			palette[c] = lipgloss.NewStyle()
		}
	}
	theme.Palette = palette
	theme.ItemActive = lipgloss.NewStyle().Bold(true).Underline(true)
	theme.HighlightBg = lipgloss.Color("238")
	return theme
}

// ThemeByName returns a named theme. Unknown names get the default.
func ThemeByName(name string) Theme {
	switch name {
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// style returns the palette entry for c, or the default style.
func (t Theme) style(c core.Color) lipgloss.Style {
	if s, ok := t.Palette[c]; ok {
		return s
	}
	return t.Palette[core.ColorDefault]
}

// GlyphsFromConfig builds the board glyph set from configuration,
// falling back to the built-in glyphs for anything unset or invalid.
func GlyphsFromConfig(cfg config.ThemeConfig) game.Glyphs {
	overrides := make(game.Glyphs, len(cfg.Glyphs))
	for sym, gc := range cfg.Glyphs {
		if len(sym) != 1 || gc.Text == "" {
			continue
		}
		color, ok := core.ParseColor(gc.Color)
		if !ok {
			color = core.ColorDefault
		}
		overrides[sokoban.Cell(sym[0])] = game.Glyph{Text: gc.Text, Color: color}
	}
	return game.DefaultGlyphs().Merge(overrides)
}
