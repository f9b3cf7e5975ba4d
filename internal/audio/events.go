package audio

// Event is a game occurrence that has an associated tone.
type Event int

const (
	EventBlocked Event = iota
	EventMove
	EventPush
	EventVictory
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventBlocked:
		return "blocked"
	case EventMove:
		return "move"
	case EventPush:
		return "push"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Tone is a frequency and duration pair.
type Tone struct {
	FreqHz     float64
	DurationMs int
}

var eventTones = map[Event]Tone{
	EventBlocked: {FreqHz: 80, DurationMs: 30},
	EventMove:    {FreqHz: 500, DurationMs: 40},
	EventPush:    {FreqHz: 100, DurationMs: 50},
	EventVictory: {FreqHz: 600, DurationMs: 200},
}

// ToneFor returns the tone played for an event.
func ToneFor(e Event) (Tone, bool) {
	t, ok := eventTones[e]
	return t, ok
}
