package audio

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// MuteSource reports the shared mute flag. Implementations must be safe
// for concurrent reads.
type MuteSource interface {
	Muted() bool
}

// Unmuted is a MuteSource that is never muted.
type Unmuted struct{}

// Muted implements MuteSource.
func (Unmuted) Muted() bool { return false }

// Generator spawns one fire-and-forget playback task per tone.
type Generator struct {
	sink    Sink
	mute    MuteSource
	logger  *log.Logger
	spawned atomic.Uint64
}

// NewGenerator creates a generator writing to sink and gated by mute.
// A nil sink discards audio; a nil mute source is never muted.
func NewGenerator(sink Sink, mute MuteSource, logger *log.Logger) *Generator {
	if sink == nil {
		sink = NopSink{}
	}
	if mute == nil {
		mute = Unmuted{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		sink:   sink,
		mute:   mute,
		logger: logger,
	}
}

// Muted reports whether playback is currently suppressed.
func (g *Generator) Muted() bool {
	return g.mute.Muted()
}

// PlayTone synthesizes and plays a tone on a new goroutine.
// It returns false without spawning anything when muted.
func (g *Generator) PlayTone(freqHz float64, durationMs int) bool {
	if g.mute.Muted() {
		return false
	}

	g.spawned.Add(1)
	go g.play(freqHz, durationMs)
	return true
}

// Play plays the tone associated with an event.
func (g *Generator) Play(e Event) bool {
	t, ok := ToneFor(e)
	if !ok {
		return false
	}
	return g.PlayTone(t.FreqHz, t.DurationMs)
}

// Spawned returns the number of playback tasks started so far.
func (g *Generator) Spawned() uint64 {
	return g.spawned.Load()
}

func (g *Generator) play(freqHz float64, durationMs int) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Debug("tone playback panicked", "freq", freqHz, "panic", fmt.Sprint(r))
		}
	}()

	pcm := Synthesize(freqHz, durationMs)
	if err := g.sink.Write(pcm, SampleRate); err != nil {
		g.logger.Debug("tone playback failed", "freq", freqHz, "ms", durationMs, "error", err)
	}
}
