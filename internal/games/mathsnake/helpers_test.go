package mathsnake

import (
	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
)

// scriptRand replays scripted draws, then returns zeros for Intn and
// 0.99 for Float64 (no bias, no multiply/divide upgrade).
type scriptRand struct {
	ints   []int
	floats []float64
	nInts  int
}

func (r *scriptRand) Intn(n int) int {
	r.nInts++
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// cueRecorder remembers every cue played.
type cueRecorder struct {
	cues []core.Cue
}

func (c *cueRecorder) Play(cue core.Cue) {
	c.cues = append(c.cues, cue)
}

func (c *cueRecorder) count(cue core.Cue) int {
	n := 0
	for _, got := range c.cues {
		if got == cue {
			n++
		}
	}
	return n
}

var testGeo = Geometry{Cols: 20, Rows: 15, CellSize: 40}

// newTestSim starts a grade-1 run on a 20x15 board with scripted randomness.
// With the default draws the target is 14 and one +1 tile sits at (0,0).
func newTestSim(grade config.Grade) (*Sim, *scriptRand, *cueRecorder) {
	cfg := config.Default()
	cfg.Grade = grade
	rng := &scriptRand{}
	cues := &cueRecorder{}
	s := NewSim(cfg, testGeo, rng, cues)
	s.Start(grade)
	s.TakeEvents()
	return s, rng, cues
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
