// Package audio synthesizes short feedback tones and a background melody.
//
// Tones are mono signed 8-bit PCM at SampleRate. Each tone plays on its own
// goroutine and is never joined; failures degrade to silence.
package audio

import "math"

// SampleRate is the synthesis rate in Hz.
const SampleRate = 8000

// samplesPerMs is the number of samples in one millisecond at SampleRate.
const samplesPerMs = SampleRate / 1000

// Synthesize returns a decaying sine tone of freqHz lasting durationMs.
// The result has durationMs*8 samples; amplitude falls linearly from 127
// to 0 across the buffer.
func Synthesize(freqHz float64, durationMs int) []int8 {
	if durationMs <= 0 {
		return nil
	}

	n := durationMs * samplesPerMs
	buf := make([]int8, n)
	if freqHz <= 0 {
		return buf
	}

	period := SampleRate / freqHz
	for i := range buf {
		angle := float64(i) / period * 2 * math.Pi
		decay := 1 - float64(i)/float64(n)
		buf[i] = int8(math.Sin(angle) * 127 * decay)
	}
	return buf
}

// Duration returns the playback length of a PCM buffer in milliseconds.
func Duration(pcm []int8) int {
	return len(pcm) / samplesPerMs
}
