package sokoban

// Engine holds the mutable grid of one level attempt.
//
// The grid overlays the immutable layout: a cell occupied by the player
// stores Player, not its terrain, so vacated cells are restored from the
// layout rather than from the grid.
type Engine struct {
	layout  Layout
	grid    [][]Cell
	playerX int
	playerY int
	steps   int
}

// NewEngine creates an engine initialised with the given layout.
func NewEngine(layout Layout) (*Engine, error) {
	e := &Engine{}
	if err := e.Load(layout); err != nil {
		return nil, err
	}
	return e, nil
}

// Load replaces the engine state with a fresh copy of layout and resets the
// step counter. A layout without a player marker returns ErrNoPlayer and
// leaves the previous state untouched.
func (e *Engine) Load(layout Layout) error {
	grid := make([][]Cell, len(layout))
	px, py, found := 0, 0, false

	for y, row := range layout {
		grid[y] = make([]Cell, len(row))
		for x := 0; x < len(row); x++ {
			c := Cell(row[x])
			grid[y][x] = c
			if c == Player && !found {
				px, py, found = x, y, true
			}
		}
	}

	if !found {
		return ErrNoPlayer
	}

	e.layout = layout.Clone()
	e.grid = grid
	e.playerX = px
	e.playerY = py
	e.steps = 0
	return nil
}

// Reset reloads the current layout, discarding progress.
func (e *Engine) Reset() {
	// The layout was accepted by Load before, so it has a player.
	_ = e.Load(e.layout)
}

// Move resolves a move in a cardinal direction.
func (e *Engine) Move(dir Direction) Outcome {
	dx, dy := dir.Delta()
	return e.TryMove(dx, dy)
}

// TryMove resolves a single player move by (dx, dy).
// Only the four cardinal unit steps are accepted; anything else is Blocked.
func (e *Engine) TryMove(dx, dy int) Outcome {
	if !isCardinal(dx, dy) {
		return Blocked
	}

	nx, ny := e.playerX+dx, e.playerY+dy
	if !e.inBounds(nx, ny) {
		return Blocked
	}

	next := e.grid[ny][nx]
	var outcome Outcome

	switch {
	case next == Wall:
		return Blocked

	case next.IsBox():
		bx, by := nx+dx, ny+dy
		if !e.inBounds(bx, by) {
			return BlockedPush
		}
		behind := e.grid[by][bx]
		if !behind.IsOpen() {
			return BlockedPush
		}
		if behind == Target {
			e.grid[by][bx] = BoxOnTarget
		} else {
			e.grid[by][bx] = Box
		}
		outcome = Pushed

	case next.IsOpen():
		outcome = Moved

	default:
		// Void and unknown symbols are not traversable.
		return Blocked
	}

	e.grid[ny][nx] = Player
	e.grid[e.playerY][e.playerX] = e.layout.terrainAt(e.playerX, e.playerY)
	e.playerX, e.playerY = nx, ny
	e.steps++

	if e.IsVictory() {
		return Victory
	}
	return outcome
}

// IsVictory reports whether no box remains off target.
// It scans the whole grid and never mutates state.
func (e *Engine) IsVictory() bool {
	for _, row := range e.grid {
		for _, c := range row {
			if c == Box {
				return false
			}
		}
	}
	return true
}

// Steps returns the number of registered moves since the level started.
func (e *Engine) Steps() int {
	return e.steps
}

// Player returns the player coordinates.
func (e *Engine) Player() (x, y int) {
	return e.playerX, e.playerY
}

// Layout returns the immutable layout the engine was loaded with.
func (e *Engine) Layout() Layout {
	return e.layout
}

// At returns the current grid symbol at (x, y). Out-of-range reads are walls.
func (e *Engine) At(x, y int) Cell {
	if !e.inBounds(x, y) {
		return Wall
	}
	return e.grid[y][x]
}

// BoxesLeft returns the number of boxes not yet on a target.
func (e *Engine) BoxesLeft() int {
	n := 0
	for _, row := range e.grid {
		for _, c := range row {
			if c == Box {
				n++
			}
		}
	}
	return n
}

func (e *Engine) inBounds(x, y int) bool {
	return y >= 0 && y < len(e.grid) && x >= 0 && x < len(e.grid[y])
}

func isCardinal(dx, dy int) bool {
	return (dx == 0 && (dy == 1 || dy == -1)) || (dy == 0 && (dx == 1 || dx == -1))
}
