package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/levels"
	"github.com/vovakirdan/boxpush/internal/storage"
)

// LevelPicker lets users choose the level to start on.
type LevelPicker struct {
	catalog   *levels.Catalog
	best      map[string]int // fewest steps per level ID
	theme     Theme
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int
	choosing  bool
	quitting  bool
}

// NewLevelPicker creates a level picker. The store may be nil, in which
// case no best-step column is shown.
func NewLevelPicker(catalog *levels.Catalog, store *storage.Store, theme Theme, width, height int) LevelPicker {
	return LevelPicker{
		catalog:   catalog,
		best:      loadBest(store),
		theme:     theme,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// loadBest reads best steps per level; failures show no bests.
func loadBest(store *storage.Store) map[string]int {
	best := make(map[string]int)
	if store == nil {
		return best
	}
	stats, err := store.AllLevelStats()
	if err != nil {
		return best
	}
	for id, st := range stats {
		best[id] = st.BestSteps
	}
	return best
}

// Init initializes the model.
func (m LevelPicker) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelPicker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.catalog.Len()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelPicker) View() string {
	if m.quitting || !m.choosing {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.theme.Title.Render(centerText("B O X P U S H", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Description.Render(centerText("Select level:", m.width)))
	b.WriteString("\n\n")

	for i, lvl := range m.catalog.Levels() {
		cursor := "  "
		style := m.theme.ItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.ItemActive
		}

		line := fmt.Sprintf("%s%2d. %-12s %dx%d", cursor, i+1, lvl.Name, lvl.Layout.Width(), lvl.Layout.Height())
		if best, ok := m.best[lvl.ID]; ok {
			line += fmt.Sprintf("  best %d", best)
		}
		b.WriteString(style.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width)))

	return b.String()
}

// Selected returns the chosen 0-based level index and whether a choice was made.
func (m LevelPicker) Selected() (int, bool) {
	if m.choosing {
		return 0, false
	}
	return m.selected, true
}

// IsQuitting returns true if user wants to quit.
func (m LevelPicker) IsQuitting() bool {
	return m.quitting
}

// RunLevelPicker runs the level picker and returns the chosen index.
// ok is false when the user quit without choosing.
func RunLevelPicker(catalog *levels.Catalog, store *storage.Store, theme Theme, cfg core.RuntimeConfig) (level int, ok bool, err error) {
	model := NewLevelPicker(catalog, store, theme, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isPicker := finalModel.(LevelPicker)
	if !isPicker || m.IsQuitting() {
		return 0, false, nil
	}

	level, ok = m.Selected()
	return level, ok, nil
}
