package audio

import (
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		ms   int
		want int
	}{
		{30, 240},
		{40, 320},
		{200, 1600},
		{400, 3200},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		if got := len(Synthesize(440, tt.ms)); got != tt.want {
			t.Errorf("len(Synthesize(440, %d)) = %d, want %d", tt.ms, got, tt.want)
		}
	}
}

func TestSynthesizeEnvelope(t *testing.T) {
	pcm := Synthesize(500, 40)

	if pcm[0] != 0 {
		t.Errorf("first sample = %d, want 0", pcm[0])
	}

	// Peak amplitude over each quarter should not grow.
	quarter := len(pcm) / 4
	prev := 128
	for q := 0; q < 4; q++ {
		peak := 0
		for _, s := range pcm[q*quarter : (q+1)*quarter] {
			v := int(s)
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		if peak > prev {
			t.Errorf("quarter %d peak %d exceeds previous %d", q, peak, prev)
		}
		prev = peak
	}
}

func TestSynthesizeMatchesFormula(t *testing.T) {
	const freq, ms = 600.0, 200
	pcm := Synthesize(freq, ms)
	n := float64(len(pcm))

	for _, i := range []int{1, 7, 100, 800, 1599} {
		want := int8(math.Sin(float64(i)/(SampleRate/freq)*2*math.Pi) * 127 * (1 - float64(i)/n))
		if pcm[i] != want {
			t.Errorf("sample %d = %d, want %d", i, pcm[i], want)
		}
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(Synthesize(80, 30)); got != 30 {
		t.Errorf("Duration() = %d, want 30", got)
	}
}

func TestToneTable(t *testing.T) {
	tests := []struct {
		event Event
		freq  float64
		ms    int
	}{
		{EventBlocked, 80, 30},
		{EventMove, 500, 40},
		{EventPush, 100, 50},
		{EventVictory, 600, 200},
	}

	for _, tt := range tests {
		tone, ok := ToneFor(tt.event)
		if !ok {
			t.Errorf("ToneFor(%s) missing", tt.event)
			continue
		}
		if tone.FreqHz != tt.freq || tone.DurationMs != tt.ms {
			t.Errorf("ToneFor(%s) = %+v, want %v Hz %d ms", tt.event, tone, tt.freq, tt.ms)
		}
	}

	if _, ok := ToneFor(Event(99)); ok {
		t.Error("ToneFor(unknown) should not be found")
	}
}

func TestPCMStreamer(t *testing.T) {
	s := newPCMStreamer([]int8{-128, 0, 64})
	buf := make([][2]float64, 2)

	n, ok := s.Stream(buf)
	if n != 2 || !ok {
		t.Fatalf("Stream() = (%d, %v), want (2, true)", n, ok)
	}
	if buf[0][0] != -1 || buf[0][1] != -1 {
		t.Errorf("sample 0 = %v, want [-1 -1]", buf[0])
	}

	n, ok = s.Stream(buf)
	if n != 1 || !ok {
		t.Fatalf("second Stream() = (%d, %v), want (1, true)", n, ok)
	}
	if buf[0][0] != 0.5 {
		t.Errorf("sample 2 = %v, want 0.5", buf[0][0])
	}

	if n, ok = s.Stream(buf); n != 0 || ok {
		t.Errorf("drained Stream() = (%d, %v), want (0, false)", n, ok)
	}
}
