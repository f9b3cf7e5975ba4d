package game

import "github.com/vovakirdan/boxpush/internal/sokoban"

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	sokoban.Snapshot

	Level      int // 1-based
	LevelCount int
	LevelID    string
	LevelName  string
	Muted      bool
	LastClear  *Clear
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	lvl := s.catalog.At(s.level)
	snap := Snapshot{
		Snapshot:   s.engine.Snapshot(),
		Level:      s.level + 1,
		LevelCount: s.catalog.Len(),
		LevelID:    lvl.ID,
		LevelName:  lvl.Name,
		Muted:      s.Muted(),
	}
	if s.last != nil {
		c := *s.last
		snap.LastClear = &c
	}
	return snap
}
