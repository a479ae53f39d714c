package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
)

// DefaultSampleRate is the speaker rate used by Open.
const DefaultSampleRate = beep.SampleRate(44100)

// Player mixes cues into the system speaker.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	mixer  *beep.Mixer
	volume *effects.Volume
	ready  bool
}

// NewPlayer creates a player. Nothing is heard until Init succeeds.
func NewPlayer(rate beep.SampleRate) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		rate:   rate,
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// SetVolume sets the master volume, 0 (silent) to 1 (full).
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		speaker.Lock()
		defer speaker.Unlock()
	}

	// effects.Volume works in powers of Base; log2(0) is -Inf.
	if v <= 0 {
		p.volume.Silent = true
		p.volume.Volume = 0
		return
	}
	p.volume.Silent = false
	p.volume.Volume = math.Log2(min(v, 1))
}

// Init opens the speaker with a 100ms buffer and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.volume)
	p.ready = true
	return nil
}

// Play implements core.CueSink. It never blocks on playback.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	s := CueStreamer(c, p.rate)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Muter wraps a sink with a run-time mute switch.
type Muter struct {
	sink  core.CueSink
	muted atomic.Bool
}

// NewMuter returns a muter forwarding to sink.
func NewMuter(sink core.CueSink, muted bool) *Muter {
	if sink == nil {
		sink = core.NopSink{}
	}
	m := &Muter{sink: sink}
	m.muted.Store(muted)
	return m
}

// Play forwards c unless muted.
func (m *Muter) Play(c core.Cue) {
	if m.muted.Load() {
		return
	}
	m.sink.Play(c)
}

// ToggleMute flips the mute state and returns the new value.
func (m *Muter) ToggleMute() bool {
	for {
		old := m.muted.Load()
		if m.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are dropped.
func (m *Muter) Muted() bool {
	return m.muted.Load()
}

// Open sets up sound for a local session. When the speaker cannot be opened
// it logs a warning and returns a silent sink; the returned close function
// is always safe to call.
func Open(cfg config.AudioConfig, logger *log.Logger) (*Muter, func()) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := NewPlayer(DefaultSampleRate)
	player.SetVolume(cfg.Volume)
	if err := player.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return NewMuter(core.NopSink{}, cfg.Muted), func() {}
	}
	logger.Debug("sound ready", "rate", int(DefaultSampleRate), "volume", cfg.Volume)
	return NewMuter(player, cfg.Muted), player.Close
}
