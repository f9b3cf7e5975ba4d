// Package levels provides the ordered level catalog for boxpush.
// This package depends on sokoban but sokoban does not depend on levels.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/boxpush/internal/sokoban"
)

// ErrInvalidLevel is returned when a catalog or one of its levels fails
// content-integrity checks.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a single named puzzle.
type Level struct {
	ID     string
	Name   string
	Layout sokoban.Layout
}

// Catalog is an ordered, read-only sequence of levels.
// It is safe to share between sessions.
type Catalog struct {
	levels []Level
}

// New builds a catalog from levels after validating each one.
func New(lvls []Level) (*Catalog, error) {
	c := &Catalog{levels: make([]Level, len(lvls))}
	for i, l := range lvls {
		l.Layout = l.Layout.Clone()
		c.levels[i] = l
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.levels)
}

// At returns the level at index i. It panics if i is out of range.
func (c *Catalog) At(i int) Level {
	if i < 0 || i >= len(c.levels) {
		panic(fmt.Sprintf("levels: index %d out of range [0,%d)", i, len(c.levels)))
	}
	return c.levels[i]
}

// Next returns the index that follows i, wrapping to 0 after the last level.
func (c *Catalog) Next(i int) int {
	if len(c.levels) == 0 {
		return 0
	}
	return (i + 1) % len(c.levels)
}

// Index returns the position of the level with the given ID.
func (c *Catalog) Index(id string) (int, bool) {
	for i, l := range c.levels {
		if l.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Levels returns a copy of the catalog contents.
func (c *Catalog) Levels() []Level {
	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Validate checks that the catalog is non-empty, IDs are unique, and every
// layout passes sokoban content-integrity rules.
func (c *Catalog) Validate() error {
	if len(c.levels) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidLevel)
	}

	seen := make(map[string]bool, len(c.levels))
	for i, l := range c.levels {
		if l.ID == "" {
			return fmt.Errorf("%w: level %d has no id", ErrInvalidLevel, i+1)
		}
		if seen[l.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidLevel, l.ID)
		}
		seen[l.ID] = true

		if l.Layout.Height() == 0 {
			return fmt.Errorf("%w: level %q has no rows", ErrInvalidLevel, l.ID)
		}
		if err := l.Layout.Validate(); err != nil {
			return fmt.Errorf("%w: level %q: %w", ErrInvalidLevel, l.ID, err)
		}
	}
	return nil
}
