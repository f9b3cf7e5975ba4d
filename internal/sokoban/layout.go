package sokoban

import (
	"errors"
	"fmt"
)

// Content-integrity errors.
var (
	ErrNoPlayer       = errors.New("sokoban: layout has no player marker")
	ErrManyPlayers    = errors.New("sokoban: layout has more than one player marker")
	ErrUnknownSymbol  = errors.New("sokoban: layout contains an unknown symbol")
	ErrNotEnoughSlots = errors.New("sokoban: layout has fewer targets than boxes")
)

// Layout is an immutable level description: rows of cell symbols.
// Rows may differ in length; reads past the end of a row are walls.
type Layout []string

// Height returns the number of rows.
func (l Layout) Height() int {
	return len(l)
}

// Width returns the length of the longest row.
func (l Layout) Width() int {
	w := 0
	for _, row := range l {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// At returns the symbol at (x, y). Out-of-range reads return Wall.
func (l Layout) At(x, y int) Cell {
	if y < 0 || y >= len(l) || x < 0 || x >= len(l[y]) {
		return Wall
	}
	return Cell(l[y][x])
}

// terrainAt returns what the cell at (x, y) reverts to once the player or a
// box leaves it: Target for target terrain, Floor otherwise.
func (l Layout) terrainAt(x, y int) Cell {
	if l.At(x, y).IsTarget() {
		return Target
	}
	return Floor
}

// Clone returns a copy of the layout rows.
func (l Layout) Clone() Layout {
	out := make(Layout, len(l))
	copy(out, l)
	return out
}

// Validate checks the content-integrity rules of a layout:
// exactly one player, only known symbols, and at least as many targets as
// boxes that still need one.
func (l Layout) Validate() error {
	players, boxes, targets := 0, 0, 0
	for y, row := range l {
		for x := 0; x < len(row); x++ {
			switch c := Cell(row[x]); c {
			case Player:
				players++
			case Box:
				boxes++
			case Target:
				targets++
			case Wall, Floor, BoxOnTarget, Void:
			default:
				return fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, c, x, y)
			}
		}
	}

	switch {
	case players == 0:
		return ErrNoPlayer
	case players > 1:
		return fmt.Errorf("%w: found %d", ErrManyPlayers, players)
	case targets < boxes:
		return fmt.Errorf("%w: %d targets for %d boxes", ErrNotEnoughSlots, targets, boxes)
	}
	return nil
}
