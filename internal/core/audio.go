package core

// Cue names one of the game's sound effects.
type Cue int

const (
	CueEat Cue = iota
	CueWin
	CueLevelComplete
	CueLose
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueEat:
		return "eat"
	case CueWin:
		return "win"
	case CueLevelComplete:
		return "levelComplete"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// CueSink plays sound cues. Play must not block and may drop cues.
type CueSink interface {
	Play(c Cue)
}

// NopSink ignores every cue.
type NopSink struct{}

// Play implements CueSink.
func (NopSink) Play(Cue) {}

// MuteToggler is a cue sink that can be silenced while the game runs.
type MuteToggler interface {
	CueSink
	// ToggleMute flips the mute state and returns the new value.
	ToggleMute() bool
	Muted() bool
}
