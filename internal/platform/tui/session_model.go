package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/game"
	"github.com/vovakirdan/boxpush/internal/levels"
	"github.com/vovakirdan/boxpush/internal/storage"
)

// SessionModelConfig holds what a SessionModel needs to build games.
type SessionModelConfig struct {
	Catalog    *levels.Catalog
	Store      *storage.Store // may be nil
	Glyphs     game.Glyphs
	Theme      Theme
	Runtime    core.RuntimeConfig
	NewSession func(level int) *game.Session
}

// SessionModel manages the full flow: level picker -> game -> picker.
// It is the top-level model for SSH sessions and `play --pick`.
type SessionModel struct {
	cfg       SessionModelConfig
	picker    LevelPicker
	gameModel *Model
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model starting on the picker.
func NewSessionModel(cfg SessionModelConfig) SessionModel {
	return SessionModel{
		cfg:    cfg,
		picker: NewLevelPicker(cfg.Catalog, cfg.Store, cfg.Theme, cfg.Runtime.ScreenW, cfg.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates when choosing a level.
func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if p, ok := newPicker.(LevelPicker); ok {
		m.picker = p
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if level, ok := m.picker.Selected(); ok {
		gm := NewModel(m.cfg.NewSession(level), m.cfg.Runtime, m.cfg.Glyphs, m.cfg.Theme)
		gm.embedded = true
		m.gameModel = &gm
		m.inGame = true
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when playing.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.gameModel = &gm
	}

	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.picker = NewLevelPicker(m.cfg.Catalog, m.cfg.Store, m.cfg.Theme, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		return m, m.picker.Init()
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.picker.View()
}
