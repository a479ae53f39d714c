package mathsnake

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
	"github.com/vovakirdan/math-snake/internal/registry"
)

// overlayDelay is how long the board stays visible after a level is
// cleared before the next-level prompt appears.
const overlayDelay = time.Second

func init() {
	for _, g := range config.Grades() {
		registry.Register(GameID(g), Title(g), func(env registry.Env) registry.Game {
			cfg := env.Config
			cfg.Grade = g
			return New(cfg, env.Cues, env.Logger)
		})
	}
}

// GameID returns the registry id of the variant for grade g.
func GameID(g config.Grade) string {
	return "grade" + string(g)
}

// Title returns the display name of the variant for grade g.
func Title(g config.Grade) string {
	return "Math Snake · " + g.Label() + " (" + g.Operators() + ")"
}

// Game adapts the simulation to the platform: fixed frames in, a character
// screen out. Time is virtual and advances one frame per Step, so a seed and
// an input script fully determine a run.
type Game struct {
	cfg    config.Config
	cues   core.CueSink
	logger *log.Logger

	sim  *Sim
	loop *Loop

	tick       uint64
	frame      time.Duration
	now        time.Time
	startLevel int

	screenW int
	screenH int

	paused     bool
	tooSmall   bool
	clearedAt  time.Time // when the last level was cleared
	lastBonus  int
	lastEvents []Event
}

// New creates a game for cfg.Grade. cues and logger may be nil.
func New(cfg config.Config, cues core.CueSink, logger *log.Logger) *Game {
	env := registry.Env{Config: cfg, Cues: cues, Logger: logger}.WithDefaults()
	return &Game{
		cfg:        env.Config,
		cues:       env.Cues,
		logger:     env.Logger,
		startLevel: 1,
	}
}

// SetStartLevel chooses the level the next Reset starts on.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.cfg.Grade)
}

// Title returns the display name.
func (g *Game) Title() string {
	return Title(g.cfg.Grade)
}

// Reset starts a new run sized for the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.frame = time.Second / time.Duration(rate)
	g.now = time.Unix(0, 0)
	g.tick = 0
	g.paused = false
	g.clearedAt = time.Time{}
	g.lastBonus = 0
	g.lastEvents = nil
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	// The smallest board fits any screen FitTerminal later accepts.
	geo, ok := FitTerminal(cfg.ScreenW, cfg.ScreenH, g.cfg.Grid.CellSize)
	if !ok {
		geo = Geometry{Cols: MinCols, Rows: MinRows, CellSize: g.cfg.Grid.CellSize}
	}
	g.tooSmall = !ok

	g.sim = NewSim(g.cfg, geo, rand.New(rand.NewSource(cfg.Seed)), g.cues)
	g.loop = NewLoop(g.sim, nil)
	g.sim.StartAt(g.cfg.Grade, g.startLevel)
	g.drainEvents()
}

// Resize adapts to a new screen size. A different board size is staged and
// takes effect at the next level; until then the current board must fit.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	if g.sim == nil {
		return
	}
	geo, ok := FitTerminal(screenW, screenH, g.cfg.Grid.CellSize)
	if ok {
		g.sim.Resize(geo)
	}
	g.tooSmall = !g.fits(g.sim.Geometry())
}

func (g *Game) fits(geo Geometry) bool {
	w := geo.Cols*CellWidth + frameCells
	h := geo.Rows + hudRows + frameCells
	return g.screenW >= w && g.screenH >= h
}

// Step advances one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.now = g.now.Add(g.frame)

	if in.Has(core.ActionMute) {
		if m, ok := g.cues.(core.MuteToggler); ok {
			muted := m.ToggleMute()
			g.logger.Debug("sound toggled", "muted", muted)
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	st := g.sim.State()
	if in.Has(core.ActionPause) && st.Phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch st.Phase {
	case PhasePlaying:
		for _, a := range in.Order {
			if d, ok := DirectionFor(a); ok {
				g.sim.Steer(d)
			}
		}
	case PhaseLevelComplete:
		if in.Has(core.ActionConfirm) && g.promptReady() {
			g.sim.NextLevel()
		}
	case PhaseGameOver, PhaseAllComplete:
		if in.Has(core.ActionRestart) {
			g.sim.Restart()
		}
	}

	g.loop.Frame(g.now)
	g.drainEvents()

	return core.StepResult{State: g.State()}
}

// promptReady reports whether the level-cleared prompt is showing.
func (g *Game) promptReady() bool {
	return g.now.Sub(g.clearedAt) >= overlayDelay
}

func (g *Game) drainEvents() {
	g.lastEvents = g.sim.TakeEvents()
	for _, e := range g.lastEvents {
		st := g.sim.State()
		switch e.Kind {
		case EventLevelStarted:
			g.logger.Info("level started", "grade", st.Grade, "level", e.Level, "target", st.Target)
		case EventAte:
			g.logger.Debug("ate", "food", e.Food.Label, "value", st.Value)
		case EventDied:
			g.logger.Info("snake died", "level", e.Level, "lives", st.Lives)
		case EventGameOver:
			g.logger.Info("game over", "level", e.Level, "score", st.Score)
		case EventLevelComplete:
			g.clearedAt = g.now
			g.lastBonus = e.Bonus
			g.logger.Info("level complete", "level", e.Level, "bonus", e.Bonus, "score", st.Score)
		case EventAllComplete:
			g.logger.Info("all levels complete", "score", st.Score)
		}
	}
}

// Events returns the events raised during the last Step or Reset.
func (g *Game) Events() []Event {
	return g.lastEvents
}

// Sim exposes the simulation for inspection.
func (g *Game) Sim() *Sim {
	return g.sim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Phase == PhaseGameOver || st.Phase == PhaseAllComplete,
		Paused:   g.paused,
	}
}
