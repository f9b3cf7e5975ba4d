// Package game ties the puzzle engine, level catalog, audio feedback and
// completion records into one playable session.
package game

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxpush/internal/core"
	"github.com/vovakirdan/boxpush/internal/levels"
	"github.com/vovakirdan/boxpush/internal/sokoban"
	"github.com/vovakirdan/boxpush/internal/storage"
)

// Notifier receives the outcome of every move request.
type Notifier interface {
	Notify(sokoban.Outcome)
}

// Recorder persists finished levels. storage.Store implements it.
type Recorder interface {
	RecordCompletion(storage.Completion) (int64, error)
}

// Clear describes the most recently finished level.
type Clear struct {
	Level int // 1-based
	Name  string
	Steps int
}

// Session is one player's run through the catalog.
// All methods except Muted must be called from a single goroutine.
type Session struct {
	id       string
	player   string
	catalog  *levels.Catalog
	engine   *sokoban.Engine
	level    int
	muted    atomic.Bool
	notifier Notifier
	recorder Recorder
	logger   *log.Logger
	clears   int
	last     *Clear
}

// Option configures a Session.
type Option func(*Session)

// WithNotifier sets the outcome listener, typically audio feedback.
func WithNotifier(n Notifier) Option {
	return func(s *Session) { s.notifier = n }
}

// WithRecorder sets where completions are stored.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithStartLevel selects the 0-based level to start on. Out-of-range
// values start on the first level.
func WithStartLevel(i int) Option {
	return func(s *Session) { s.level = i }
}

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(s *Session) { s.muted.Store(muted) }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithPlayer sets the player name stored with completions.
func WithPlayer(name string) Option {
	return func(s *Session) { s.player = name }
}

// NewSession creates a session positioned on the start level.
// It panics if the catalog holds a layout the engine rejects; catalogs are
// validated when loaded, so that is a programming error.
func NewSession(catalog *levels.Catalog, opts ...Option) *Session {
	s := &Session{
		id:      storage.NewSessionID(),
		catalog: catalog,
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.level < 0 || s.level >= catalog.Len() {
		s.level = 0
	}
	s.InitLevel(s.level)
	return s
}

// SetNotifier replaces the outcome listener. It exists because the audio
// generator reads the session's mute flag and so is built after it.
func (s *Session) SetNotifier(n Notifier) {
	s.notifier = n
}

// ID returns the session identifier used for completion records.
func (s *Session) ID() string {
	return s.id
}

// InitLevel loads level i from the catalog and resets the step counter.
func (s *Session) InitLevel(i int) {
	lvl := s.catalog.At(i)
	if s.engine == nil {
		e, err := sokoban.NewEngine(lvl.Layout)
		if err != nil {
			panic(fmt.Sprintf("game: level %q: %v", lvl.ID, err))
		}
		s.engine = e
	} else if err := s.engine.Load(lvl.Layout); err != nil {
		panic(fmt.Sprintf("game: level %q: %v", lvl.ID, err))
	}
	s.level = i
	s.logger.Debug("level loaded", "level", i+1, "id", lvl.ID)
}

// Reset restarts the current level.
func (s *Session) Reset() {
	s.engine.Reset()
}

// Move attempts a move, reports the outcome to the notifier and advances
// to the next level on victory.
func (s *Session) Move(dir sokoban.Direction) sokoban.Outcome {
	outcome := s.engine.Move(dir)
	if s.notifier != nil {
		s.notifier.Notify(outcome)
	}
	if outcome == sokoban.Victory {
		s.complete()
	}
	return outcome
}

// Apply performs an input action. Non-move actions return Blocked.
func (s *Session) Apply(a core.Action) sokoban.Outcome {
	switch a {
	case core.ActionUp:
		return s.Move(sokoban.DirUp)
	case core.ActionDown:
		return s.Move(sokoban.DirDown)
	case core.ActionLeft:
		return s.Move(sokoban.DirLeft)
	case core.ActionRight:
		return s.Move(sokoban.DirRight)
	case core.ActionReset:
		s.Reset()
	case core.ActionMute:
		s.ToggleMute()
	}
	return sokoban.Blocked
}

// ToggleMute flips the mute flag and returns the new state.
func (s *Session) ToggleMute() bool {
	for {
		old := s.muted.Load()
		if s.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether audio is suppressed. Safe for concurrent use.
func (s *Session) Muted() bool {
	return s.muted.Load()
}

// Level returns the 0-based index of the current level.
func (s *Session) Level() int {
	return s.level
}

// Clears returns how many levels were finished in this session.
func (s *Session) Clears() int {
	return s.clears
}

// LastClear returns the most recently finished level, or nil.
func (s *Session) LastClear() *Clear {
	return s.last
}

// complete records the finished level and loads the next one.
func (s *Session) complete() {
	lvl := s.catalog.At(s.level)
	steps := s.engine.Steps()

	s.clears++
	s.last = &Clear{Level: s.level + 1, Name: lvl.Name, Steps: steps}
	s.logger.Info("level cleared", "level", s.level+1, "id", lvl.ID, "steps", steps)

	if s.recorder != nil {
		_, err := s.recorder.RecordCompletion(storage.Completion{
			SessionID:  s.id,
			Player:     s.player,
			LevelID:    lvl.ID,
			LevelIndex: s.level,
			Steps:      steps,
		})
		if err != nil {
			s.logger.Warn("could not record completion", "level", lvl.ID, "error", err)
		}
	}

	s.InitLevel(s.catalog.Next(s.level))
}
