package mathsnake

import (
	"context"
	"time"
)

// Renderer paints one frame of the simulation.
type Renderer interface {
	RenderFrame(s *Sim)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(s *Sim)

// RenderFrame calls f(s).
func (f RendererFunc) RenderFrame(s *Sim) { f(s) }

// Scheduler yields frame timestamps. It is the only host primitive the loop
// needs: a ticker in production, a scripted clock in tests.
type Scheduler interface {
	Next(ctx context.Context) (time.Time, error)
}

// Loop drives a simulation frame by frame.
type Loop struct {
	Sim      *Sim
	Effects  *Effects
	Renderer Renderer // optional
}

// NewLoop wires a loop around sim and its effects.
func NewLoop(sim *Sim, r Renderer) *Loop {
	return &Loop{Sim: sim, Effects: sim.Effects(), Renderer: r}
}

// Frame runs one frame: at most one rate-limited step, then the effects
// tick, then rendering. It reports whether a step ran.
func (l *Loop) Frame(now time.Time) bool {
	stepped := l.Sim.Update(now)
	l.Effects.Tick()
	if l.Renderer != nil {
		l.Renderer.RenderFrame(l.Sim)
	}
	return stepped
}

// Run repeats frames until the run stops and the last effects have faded,
// or ctx is done. Resuming after a level (NextLevel, Restart) needs a new
// call to Run.
func (l *Loop) Run(ctx context.Context, sched Scheduler) error {
	for l.Sim.Running() || l.Effects.Active() {
		now, err := sched.Next(ctx)
		if err != nil {
			return err
		}
		l.Frame(now)
	}
	return nil
}

// TickerScheduler paces frames with a time.Ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

// NewTickerScheduler returns a scheduler firing every d.
func NewTickerScheduler(d time.Duration) *TickerScheduler {
	return &TickerScheduler{ticker: time.NewTicker(d)}
}

// Next blocks until the next tick or until ctx is done.
func (t *TickerScheduler) Next(ctx context.Context) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	case now := <-t.ticker.C:
		return now, nil
	}
}

// Stop releases the ticker.
func (t *TickerScheduler) Stop() {
	t.ticker.Stop()
}
