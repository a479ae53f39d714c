package mathsnake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/math-snake/internal/core"
)

func TestBurst(t *testing.T) {
	fx := NewEffects(rand.New(rand.NewSource(1)))
	fx.Burst(60, 20, 40, core.ColorRed)

	ps := fx.Particles()
	if len(ps) != burstCount {
		t.Fatalf("burst = %d particles, expected %d", len(ps), burstCount)
	}
	for _, p := range ps {
		if p.X != 60 || p.Y != 20 || p.Life != 1 || p.Color != core.ColorRed {
			t.Errorf("unexpected particle %+v", p)
		}
		if p.VX < -5 || p.VX > 5 || p.VY < -5 || p.VY > 5 {
			t.Errorf("velocity (%.2f, %.2f) outside ±cellSize/8", p.VX, p.VY)
		}
	}
}

func TestParticleDecay(t *testing.T) {
	fx := NewEffects(&scriptRand{floats: []float64{1, 0}})
	fx.Burst(0, 0, 40, core.ColorRed)

	fx.Tick()
	p := fx.Particles()[0]
	if p.X != 5 || p.Y != -5 {
		t.Errorf("position after one tick = (%.1f, %.1f), expected (5, -5)", p.X, p.Y)
	}

	for range 18 {
		fx.Tick()
	}
	if len(fx.Particles()) != burstCount {
		t.Fatal("particles should survive 19 ticks")
	}
	fx.Tick()
	fx.Tick()
	if len(fx.Particles()) != 0 {
		t.Errorf("%d particles left after 21 ticks", len(fx.Particles()))
	}
	if fx.Active() {
		t.Error("no effect should be active")
	}
}

func TestFloatingTextDecay(t *testing.T) {
	fx := NewEffects(rand.New(rand.NewSource(1)))
	fx.Float(100, 40, "×3", core.ColorGreen)

	for range 49 {
		fx.Tick()
	}
	texts := fx.Texts()
	if len(texts) != 1 {
		t.Fatal("text should survive 49 ticks")
	}
	if texts[0].Y != 40-49 {
		t.Errorf("text y = %.1f, expected %d", texts[0].Y, 40-49)
	}
	fx.Tick()
	fx.Tick()
	if len(fx.Texts()) != 0 {
		t.Error("text should be gone after 51 ticks")
	}
}

func TestConfetti(t *testing.T) {
	fx := NewEffects(rand.New(rand.NewSource(9)))
	fx.Confetti(400, 300, 40)

	ps := fx.Particles()
	if len(ps) != confettiCount {
		t.Fatalf("confetti = %d particles, expected %d", len(ps), confettiCount)
	}
	colors := make(map[core.Color]bool)
	for _, p := range ps {
		if p.Life != 2 || p.X != 400 || p.Y != 300 {
			t.Fatalf("unexpected confetti particle %+v", p)
		}
		if p.VX < -10 || p.VX > 10 {
			t.Errorf("confetti velocity %.2f outside ±cellSize/4", p.VX)
		}
		colors[p.Color] = true
	}
	if len(colors) < 10 {
		t.Errorf("confetti has only %d distinct colours", len(colors))
	}

	for range 39 {
		fx.Tick()
	}
	if !fx.Active() {
		t.Error("confetti should outlive a normal burst")
	}
}

func TestClearKeepsTexts(t *testing.T) {
	fx := NewEffects(rand.New(rand.NewSource(1)))
	fx.Burst(0, 0, 40, core.ColorRed)
	fx.Float(0, 0, "+1", core.ColorGreen)

	fx.Clear()
	if len(fx.Particles()) != 0 || len(fx.Texts()) != 1 {
		t.Error("Clear should drop particles only")
	}
	fx.Reset()
	if fx.Active() {
		t.Error("Reset should drop everything")
	}
}

func TestHueColor(t *testing.T) {
	tests := []struct {
		hue  float64
		want core.Color
	}{
		{0, "#ff0000"},
		{120, "#00ff00"},
		{240, "#0000ff"},
	}
	for _, tt := range tests {
		if got := HueColor(tt.hue); got != tt.want {
			t.Errorf("HueColor(%v) = %s, expected %s", tt.hue, got, tt.want)
		}
	}
}
