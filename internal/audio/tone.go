// Package audio synthesises the game's sound cues with beep and plays them
// through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Ramp is how a parameter moves from its start to its end value.
type Ramp int

const (
	RampLinear Ramp = iota
	RampExp         // start and end must be positive
)

func (r Ramp) at(from, to, u float64) float64 {
	if r == RampExp && from > 0 && to > 0 {
		return from * math.Pow(to/from, u)
	}
	return from + (to-from)*u
}

// Tone is a single oscillator with a frequency sweep and a gain envelope.
type Tone struct {
	Wave     Wave
	Duration time.Duration

	FreqStart float64
	FreqEnd   float64
	FreqRamp  Ramp

	GainStart float64
	GainEnd   float64
	GainRamp  Ramp
}

// Streamer renders the tone at the given sample rate.
func (t Tone) Streamer(rate beep.SampleRate) beep.Streamer {
	return &toneStreamer{tone: t, rate: rate, total: rate.N(t.Duration)}
}

type toneStreamer struct {
	tone  Tone
	rate  beep.SampleRate
	total int
	pos   int
	phase float64
}

func (s *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			return i, true
		}
		u := float64(s.pos) / float64(s.total)
		freq := s.tone.FreqRamp.at(s.tone.FreqStart, s.tone.FreqEnd, u)
		gain := s.tone.GainRamp.at(s.tone.GainStart, s.tone.GainEnd, u)

		var val float64
		switch s.tone.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		}
		val *= gain

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *toneStreamer) Err() error { return nil }
