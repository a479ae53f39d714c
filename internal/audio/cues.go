package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/math-snake/internal/core"
)

// arpeggio is the C major run played when a level is cleared.
var arpeggio = []float64{523.25, 659.25, 783.99, 1046.50}

const arpeggioNote = 100 * time.Millisecond

// CueStreamer returns a fresh streamer for cue c.
func CueStreamer(c core.Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case core.CueEat:
		return Tone{
			Wave: WaveSine, Duration: 100 * time.Millisecond,
			FreqStart: 600, FreqEnd: 1200, FreqRamp: RampExp,
			GainStart: 0.3, GainEnd: 0.01, GainRamp: RampExp,
		}.Streamer(rate)

	case core.CueWin:
		notes := make([]beep.Streamer, 0, len(arpeggio))
		for _, f := range arpeggio {
			notes = append(notes, Tone{
				Wave: WaveSquare, Duration: arpeggioNote,
				FreqStart: f, FreqEnd: f,
				GainStart: 0.1, GainEnd: 0.01, GainRamp: RampExp,
			}.Streamer(rate))
		}
		return beep.Seq(notes...)

	case core.CueLevelComplete:
		return Tone{
			Wave: WaveSine, Duration: 200 * time.Millisecond,
			FreqStart: 400, FreqEnd: 800, FreqRamp: RampLinear,
			GainStart: 0.2, GainEnd: 0, GainRamp: RampLinear,
		}.Streamer(rate)

	case core.CueLose:
		return Tone{
			Wave: WaveSaw, Duration: 500 * time.Millisecond,
			FreqStart: 200, FreqEnd: 50, FreqRamp: RampExp,
			GainStart: 0.3, GainEnd: 0.01, GainRamp: RampLinear,
		}.Streamer(rate)
	}
	return beep.Silence(0)
}
