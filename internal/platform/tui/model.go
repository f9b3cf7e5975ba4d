package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/game"
)

// bannerDuration is how long the "level cleared" banner stays up.
const bannerDuration = 2 * time.Second

// Model is the Bubble Tea model for playing a session.
type Model struct {
	session    *game.Session
	screen     *core.Screen
	config     core.RuntimeConfig
	glyphs     game.Glyphs
	theme      Theme
	keyMapper  *KeyMapper
	clears     int       // session clears already shown
	bannerTill time.Time // zero when no banner is shown
	embedded   bool      // back returns to a parent model instead of quitting
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, cfg core.RuntimeConfig, glyphs game.Glyphs, theme Theme) Model {
	if glyphs == nil {
		glyphs = game.DefaultGlyphs()
	}
	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		glyphs:    glyphs,
		theme:     theme,
		keyMapper: NewKeyMapper(),
		clears:    session.Clears(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.bannerTill.IsZero() && !time.Time(msg).Before(m.bannerTill) {
			m.bannerTill = time.Time{}
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone, core.ActionConfirm:
		return m, nil
	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.session.Apply(action)

	if n := m.session.Clears(); n != m.clears {
		m.clears = n
		m.bannerTill = time.Now().Add(bannerDuration)
		return m, tickCmd(bannerDuration)
	}
	return m, nil
}

// snapshot returns the session snapshot with the clear banner applied.
func (m Model) snapshot() game.Snapshot {
	snap := m.session.Snapshot()
	if m.bannerTill.IsZero() {
		snap.LastClear = nil
	}
	return snap
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	game.Render(m.screen, m.snapshot(), m.glyphs)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".boxpush", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("level%02d_%s.txt", m.session.Level()+1, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game.Render(m.screen, m.snapshot(), m.glyphs)
	return RenderScreen(m.screen, m.theme)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, cfg core.RuntimeConfig, glyphs game.Glyphs, theme Theme) error {
	model := NewModel(session, cfg, glyphs, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
