package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/boxpush/internal/config"
	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/game"
	"github.com/vovakirdan/boxpush/internal/levels"
	"github.com/vovakirdan/boxpush/internal/platform/tui"
	"github.com/vovakirdan/boxpush/internal/storage"
)

// app is the state shared by every command: merged configuration,
// the level catalog and the root logger.
type app struct {
	cfg     config.Config
	catalog *levels.Catalog
	glyphs  game.Glyphs
	theme   tui.Theme
	logger  *log.Logger
	logFile *os.File
}

// setup loads configuration, applies flag overrides and loads the catalog.
// With toFile the logger writes to the configured log file so it does not
// draw over the full-screen UI. Startup failures are fatal.
func setup(toFile bool) *app {
	startup := newLogger(os.Stderr, "info")

	cfg, err := config.Load(flagConfig)
	if err != nil {
		startup.Fatal("cannot load config", "err", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevelsPath != "" {
		cfg.Levels.Path = flagLevelsPath
	}
	if flagMute {
		cfg.Audio.Muted = true
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	a := &app{
		cfg:    cfg,
		glyphs: tui.GlyphsFromConfig(cfg.Theme),
		theme:  tui.ThemeByName(cfg.Theme.Name),
	}

	var w io.Writer = os.Stderr
	if toFile {
		w = io.Discard
		if f, fileErr := openLogFile(cfg.Log.File); fileErr == nil {
			a.logFile = f
			w = f
		}
	}
	a.logger = newLogger(w, cfg.Log.Level)

	catalog, err := levels.Load(config.ExpandHome(cfg.Levels.Path))
	if err != nil {
		startup.Fatal("invalid level catalog", "path", cfg.Levels.Path, "err", err)
	}
	a.catalog = catalog

	return a
}

// close releases the log file.
func (a *app) close() {
	if a.logFile != nil {
		a.logFile.Close()
	}
}

// openStore opens the records database. Failure is a warning: the game
// runs without records.
func (a *app) openStore() *storage.Store {
	store, err := storage.Open(a.cfg.Storage.Path)
	if err != nil {
		a.logger.Warn("could not open records database", "path", a.cfg.Storage.Path, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// newLogger builds a logger at the named level; unknown names keep info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "boxpush",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	path = config.ExpandHome(path)
	if path == "" {
		return nil, os.ErrNotExist
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// playerName is the name stored with local completions.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
