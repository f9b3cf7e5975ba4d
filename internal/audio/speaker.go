package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// DeviceRate is the output rate the speaker is opened at.
const DeviceRate = beep.SampleRate(44100)

// resampleQuality is passed to beep.Resample; 4 is beep's suggested default.
const resampleQuality = 4

// SpeakerSink plays PCM through the system audio device via beep.
// The device is opened lazily on first Write.
type SpeakerSink struct {
	volume float64

	once    sync.Once
	initErr error
}

// NewSpeakerSink creates a speaker sink. Volume is linear in [0, 1].
func NewSpeakerSink(volume float64) *SpeakerSink {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &SpeakerSink{volume: volume}
}

// Init opens the audio device. It is called by Write and may be called
// early to surface device errors at startup.
func (s *SpeakerSink) Init() error {
	s.once.Do(func() {
		s.initErr = speaker.Init(DeviceRate, DeviceRate.N(100*time.Millisecond))
	})
	return s.initErr
}

// Write implements Sink. It blocks until the buffer has been played.
func (s *SpeakerSink) Write(pcm []int8, sampleRate int) error {
	if len(pcm) == 0 {
		return nil
	}
	if sampleRate <= 0 {
		return fmt.Errorf("audio: invalid sample rate %d", sampleRate)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	var stream beep.Streamer = newPCMStreamer(pcm)
	if beep.SampleRate(sampleRate) != DeviceRate {
		stream = beep.Resample(resampleQuality, beep.SampleRate(sampleRate), DeviceRate, stream)
	}
	stream = newVolume(stream, s.volume)

	done := make(chan struct{})
	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}

// pcmStreamer adapts signed 8-bit mono samples to a beep.Streamer.
type pcmStreamer struct {
	pcm []int8
	pos int
}

func newPCMStreamer(pcm []int8) *pcmStreamer {
	return &pcmStreamer{pcm: pcm}
}

func (p *pcmStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if p.pos >= len(p.pcm) {
		return 0, false
	}
	for i := range samples {
		if p.pos >= len(p.pcm) {
			return i, true
		}
		v := float64(p.pcm[p.pos]) / 128
		samples[i][0] = v
		samples[i][1] = v
		p.pos++
	}
	return len(samples), true
}

func (p *pcmStreamer) Err() error { return nil }

// newVolume wraps s with a linear gain. Zero volume is silent since
// math.Log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
