package audio

import (
	"context"
	"math/rand"
	"time"
)

// Melody defaults.
const (
	DefaultMelodyInterval = 800 * time.Millisecond
	DefaultMelodyNoteMs   = 400
)

// melodyNotes is the pentatonic pool, played one octave down.
var melodyNotes = []float64{261, 293, 329, 392, 440}

// Melody plays a random low note at a fixed interval until cancelled.
type Melody struct {
	gen      *Generator
	interval time.Duration
	noteMs   int
	rng      *rand.Rand
}

// MelodyOption configures a Melody.
type MelodyOption func(*Melody)

// WithInterval sets the time between notes.
func WithInterval(d time.Duration) MelodyOption {
	return func(m *Melody) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithNoteLength sets each note's duration in milliseconds.
func WithNoteLength(ms int) MelodyOption {
	return func(m *Melody) {
		if ms > 0 {
			m.noteMs = ms
		}
	}
}

// WithSeed makes note selection deterministic.
func WithSeed(seed int64) MelodyOption {
	return func(m *Melody) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// NewMelody creates a melody that plays through gen.
func NewMelody(gen *Generator, opts ...MelodyOption) *Melody {
	m := &Melody{
		gen:      gen,
		interval: DefaultMelodyInterval,
		noteMs:   DefaultMelodyNoteMs,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run blocks, playing one note per interval, until ctx is done.
// Notes are skipped while the generator is muted.
func (m *Melody) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.gen.Muted() {
				continue
			}
			m.gen.PlayTone(m.nextNote(), m.noteMs)
		}
	}
}

// nextNote picks a note from the pool and drops it an octave.
func (m *Melody) nextNote() float64 {
	return melodyNotes[m.rng.Intn(len(melodyNotes))] / 2
}
