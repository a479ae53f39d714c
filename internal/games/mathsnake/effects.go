package mathsnake

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/math-snake/internal/core"
)

// Effect tuning, in pixels and life units per tick.
const (
	burstCount      = 8
	confettiCount   = 100
	particleLife    = 1.0
	confettiLife    = 2.0
	particleDecay   = 0.05
	textLife        = 1.0
	textDecay       = 0.02
	textDrift       = -1.0
	burstSpreadDiv  = 4 // burst velocity spans cellSize/burstSpreadDiv
	confettiSpreadDiv = 2 // confetti velocity spans cellSize/confettiSpreadDiv
)

// Particle is a moving dot that fades out.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Color  core.Color
}

// FloatingText is a label drifting upward while it fades.
type FloatingText struct {
	X, Y  float64
	DY    float64
	Life  float64
	Text  string
	Color core.Color
}

// Effects owns the transient visuals. It ticks once per rendered frame,
// independently of simulation steps.
type Effects struct {
	rng       Rand
	particles []Particle
	texts     []FloatingText
}

// NewEffects returns an empty effects system.
func NewEffects(rng Rand) *Effects {
	return &Effects{rng: rng}
}

// Burst emits the eat explosion at pixel (x, y).
func (e *Effects) Burst(x, y float64, cellSize int, c core.Color) {
	spread := float64(cellSize) / burstSpreadDiv
	for range burstCount {
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Float64() - 0.5) * spread,
			VY:    (e.rng.Float64() - 0.5) * spread,
			Life:  particleLife,
			Color: c,
		})
	}
}

// Float adds a drifting label at pixel (x, y).
func (e *Effects) Float(x, y float64, text string, c core.Color) {
	e.texts = append(e.texts, FloatingText{
		X:     x,
		Y:     y,
		DY:    textDrift,
		Life:  textLife,
		Text:  text,
		Color: c,
	})
}

// Confetti emits the celebration burst at pixel (x, y) in random hues.
func (e *Effects) Confetti(x, y float64, cellSize int) {
	spread := float64(cellSize) / confettiSpreadDiv
	for range confettiCount {
		vx := (e.rng.Float64() - 0.5) * spread
		vy := (e.rng.Float64() - 0.5) * spread
		hue := e.rng.Float64() * 360
		e.particles = append(e.particles, Particle{
			X:     x,
			Y:     y,
			VX:    vx,
			VY:    vy,
			Life:  confettiLife,
			Color: HueColor(hue),
		})
	}
}

// HueColor converts a hue in degrees to a fully saturated colour.
func HueColor(hue float64) core.Color {
	return core.Hex(colorful.Hsl(hue, 1, 0.5).Hex())
}

// Tick moves and fades everything, dropping what has expired.
func (e *Effects) Tick() {
	live := e.particles[:0]
	for _, p := range e.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= particleDecay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	e.particles = live

	texts := e.texts[:0]
	for _, t := range e.texts {
		t.Y += t.DY
		t.Life -= textDecay
		if t.Life > 0 {
			texts = append(texts, t)
		}
	}
	e.texts = texts
}

// Clear removes all particles. Floating texts finish their drift.
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
}

// Reset removes particles and texts.
func (e *Effects) Reset() {
	e.particles = e.particles[:0]
	e.texts = e.texts[:0]
}

// Active reports whether any effect is still alive.
func (e *Effects) Active() bool {
	return len(e.particles) > 0 || len(e.texts) > 0
}

// Particles returns the live particles. The slice is owned by Effects.
func (e *Effects) Particles() []Particle {
	return e.particles
}

// Texts returns the live floating texts. The slice is owned by Effects.
func (e *Effects) Texts() []FloatingText {
	return e.texts
}
