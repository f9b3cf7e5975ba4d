package sokoban

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	Width   int
	Height  int
	Steps   int
	PlayerX int
	PlayerY int
	Boxes   int // boxes still off target
	Won     bool
	grid    [][]Cell
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	grid := make([][]Cell, len(e.grid))
	width := 0
	for y, row := range e.grid {
		grid[y] = make([]Cell, len(row))
		copy(grid[y], row)
		if len(row) > width {
			width = len(row)
		}
	}

	return Snapshot{
		Width:   width,
		Height:  len(grid),
		Steps:   e.steps,
		PlayerX: e.playerX,
		PlayerY: e.playerY,
		Boxes:   e.BoxesLeft(),
		Won:     e.IsVictory(),
		grid:    grid,
	}
}

// Cell returns the symbol at (x, y). Cells outside a row render as Void.
func (s Snapshot) Cell(x, y int) Cell {
	if y < 0 || y >= len(s.grid) || x < 0 || x >= len(s.grid[y]) {
		return Void
	}
	return s.grid[y][x]
}

// Rows returns the grid as strings, one per row.
func (s Snapshot) Rows() []string {
	rows := make([]string, len(s.grid))
	for y, row := range s.grid {
		b := make([]byte, len(row))
		for x, c := range row {
			b[x] = byte(c)
		}
		rows[y] = string(b)
	}
	return rows
}
