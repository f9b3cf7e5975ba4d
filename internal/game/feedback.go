package game

import (
	"github.com/vovakirdan/boxpush/internal/audio"
	"github.com/vovakirdan/boxpush/internal/sokoban"
)

// Feedback plays a tone for every move outcome.
type Feedback struct {
	gen *audio.Generator
}

// NewFeedback creates a notifier backed by gen.
func NewFeedback(gen *audio.Generator) *Feedback {
	return &Feedback{gen: gen}
}

// Notify implements Notifier.
func (f *Feedback) Notify(o sokoban.Outcome) {
	f.gen.Play(EventFor(o))
}

// EventFor maps a move outcome to its audio event.
func EventFor(o sokoban.Outcome) audio.Event {
	switch o {
	case sokoban.Moved:
		return audio.EventMove
	case sokoban.Pushed:
		return audio.EventPush
	case sokoban.Victory:
		return audio.EventVictory
	default:
		return audio.EventBlocked
	}
}
