// Package sokoban implements the box-pushing puzzle engine: level layouts,
// move resolution and victory detection. It has no knowledge of terminals,
// audio or level catalogs.
package sokoban

// Cell is one grid symbol.
type Cell byte

// Layout alphabet.
const (
	Wall        Cell = 'W'
	Target      Cell = 'T'
	Box         Cell = 'B'
	Player      Cell = 'P'
	Floor       Cell = '.'
	BoxOnTarget Cell = '*'
	Void        Cell = ' ' // padding outside the walls, never traversable
)

// IsBox reports whether the cell holds a box, on or off a target.
func (c Cell) IsBox() bool {
	return c == Box || c == BoxOnTarget
}

// IsOpen reports whether a box or the player may enter the cell.
func (c Cell) IsOpen() bool {
	return c == Floor || c == Target
}

// IsTarget reports whether the cell's terrain is a target.
func (c Cell) IsTarget() bool {
	return c == Target || c == BoxOnTarget
}

// String returns the cell symbol.
func (c Cell) String() string {
	return string(rune(c))
}
