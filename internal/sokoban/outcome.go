package sokoban

// Outcome is the result of a move request. Blocked moves are normal
// outcomes, not errors.
type Outcome int

const (
	Blocked     Outcome = iota // wall or grid edge, nothing changed
	BlockedPush                // box could not be pushed, nothing changed
	Moved                      // player stepped onto floor or target
	Pushed                     // player pushed a box one cell
	Victory                    // move registered and no box is off target
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case BlockedPush:
		return "blocked_push"
	case Moved:
		return "moved"
	case Pushed:
		return "pushed"
	case Victory:
		return "victory"
	default:
		return "unknown"
	}
}

// Registered reports whether the move happened (the step counter advanced).
func (o Outcome) Registered() bool {
	return o == Moved || o == Pushed || o == Victory
}

// Direction represents a cardinal move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the (dx, dy) step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
