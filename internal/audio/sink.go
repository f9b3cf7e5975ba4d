package audio

// Sink plays a PCM buffer. Write may block until playback completes.
type Sink interface {
	Write(pcm []int8, sampleRate int) error
}

// NopSink discards all audio. Used for SSH sessions and tests.
type NopSink struct{}

// Write implements Sink.
func (NopSink) Write([]int8, int) error { return nil }

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(pcm []int8, sampleRate int) error

// Write implements Sink.
func (f SinkFunc) Write(pcm []int8, sampleRate int) error {
	return f(pcm, sampleRate)
}
