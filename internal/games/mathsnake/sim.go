package mathsnake

import (
	"slices"
	"time"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
)

// Sim is the step simulator: one explicit context holding the run state,
// the board and the effects. All calls must come from a single goroutine.
type Sim struct {
	cfg     config.Config
	rng     Rand
	cues    core.CueSink
	spawner *Spawner
	effects *Effects

	board   Board
	pending *Geometry // applied at the next level start
	state   RunState

	dir      Direction
	nextDir  Direction
	interval time.Duration
	lastStep time.Time
	anchored bool

	events []Event
}

// NewSim returns an idle simulation. A nil cue sink plays nothing.
func NewSim(cfg config.Config, geo Geometry, rng Rand, cues core.CueSink) *Sim {
	if cues == nil {
		cues = core.NopSink{}
	}
	return &Sim{
		cfg:     cfg,
		rng:     rng,
		cues:    cues,
		spawner: NewSpawner(rng, cfg.Rules.SpawnAttempts),
		effects: NewEffects(rng),
		board:   Board{Geo: geo},
		state: RunState{
			Grade:    cfg.Grade,
			MaxLevel: cfg.Levels.MaxLevel,
			Lives:    cfg.Rules.Lives,
		},
		dir:      DirRight,
		nextDir:  DirRight,
		interval: cfg.Speed.Interval(1),
	}
}

// Start begins a fresh run at level 1 for grade g.
func (s *Sim) Start(g config.Grade) {
	s.StartAt(g, 1)
}

// StartAt begins a fresh run for grade g at the given level, clamped to
// [1, MaxLevel].
func (s *Sim) StartAt(g config.Grade, level int) {
	s.state = RunState{
		Grade:    g,
		MaxLevel: s.cfg.Levels.MaxLevel,
		Lives:    s.cfg.Rules.Lives,
	}
	s.effects.Reset()
	s.StartLevel(min(max(level, 1), s.state.MaxLevel))
}

// StartLevel resets the per-level state, rolls a new target and repopulates
// the board. Score, lives and grade carry over.
func (s *Sim) StartLevel(level int) {
	if s.pending != nil {
		s.board.Geo = *s.pending
		s.pending = nil
	}

	lv := s.cfg.Levels
	s.state.Level = level
	s.state.Value = 0
	s.state.LevelSteps = 0
	s.state.Target = lv.TargetBase + level*lv.TargetPerLevel + s.rng.Intn(lv.TargetSpread)

	s.respawn()
	s.interval = s.cfg.Speed.Interval(level)

	s.board.Food = s.board.Food[:0]
	s.effects.Clear()
	s.spawner.Replenish(&s.board, s.state, s.cfg.Rules.MinFood)

	s.state.Running = true
	s.state.Phase = PhasePlaying
	s.anchored = false
	s.emit(Event{Kind: EventLevelStarted, Level: level})
}

// Steer stages the next direction. Reversing onto the neck is rejected.
func (s *Sim) Steer(d Direction) bool {
	if d.Opposite(s.dir) {
		return false
	}
	s.nextDir = d
	return true
}

// Update performs at most one step when more than the step interval has
// elapsed since the previous one. The first call after a level starts only
// anchors the clock. It reports whether a step ran.
func (s *Sim) Update(now time.Time) bool {
	if !s.state.Running {
		return false
	}
	if !s.anchored {
		s.lastStep = now
		s.anchored = true
		return false
	}
	if now.Sub(s.lastStep) <= s.interval {
		return false
	}
	s.lastStep = now
	s.Step()
	return true
}

// Step advances the snake one cell and resolves the outcome. It returns the
// events raised by this step.
func (s *Sim) Step() []Event {
	if !s.state.Running || len(s.board.Snake) == 0 {
		return nil
	}
	mark := len(s.events)

	s.dir = s.nextDir
	head := s.board.Snake[0].Add(s.dir)

	if !s.board.Geo.Contains(head) || s.board.SnakeAt(head) {
		s.die()
		return slices.Clone(s.events[mark:])
	}

	eaten := s.board.FoodIndex(head)
	s.board.Snake = slices.Insert(s.board.Snake, 0, head)
	if eaten >= 0 {
		s.eat(eaten)
	} else {
		s.board.Snake = s.board.Snake[:len(s.board.Snake)-1]
	}

	if s.state.Value == s.state.Target {
		s.completeLevel()
	}
	return slices.Clone(s.events[mark:])
}

func (s *Sim) eat(i int) {
	f := s.board.Food[i]
	s.state.Value = f.Op.Apply(s.state.Value, f.Operand)
	s.state.Score += s.cfg.Rules.Reward
	s.state.LevelSteps++

	geo := s.board.Geo
	cx, cy := geo.CellCenter(f.Cell)
	s.effects.Burst(cx, cy, geo.CellSize, f.Color)
	ox, oy := geo.CellOrigin(f.Cell)
	s.effects.Float(ox+float64(geo.CellSize)/2, oy, f.Label, f.Color)
	s.cues.Play(core.CueEat)

	s.board.Food = slices.Delete(s.board.Food, i, i+1)
	s.spawner.Spawn(&s.board, s.state)
	s.emit(Event{Kind: EventAte, Level: s.state.Level, Food: f})
}

// die costs a life. Value, score, level and level steps survive.
func (s *Sim) die() {
	s.state.Lives--
	s.cues.Play(core.CueLose)
	s.emit(Event{Kind: EventDied, Level: s.state.Level})

	if s.state.Lives <= 0 {
		s.state.Lives = 0
		s.state.Running = false
		s.state.Phase = PhaseGameOver
		s.emit(Event{Kind: EventGameOver, Level: s.state.Level})
		return
	}

	s.respawn()
	s.board.DropFoodUnderSnake()
	s.spawner.Replenish(&s.board, s.state, s.cfg.Rules.MinFood)
}

func (s *Sim) completeLevel() {
	s.state.Running = false
	s.state.Phase = PhaseLevelComplete

	bonus := s.cfg.Bonus.LevelBonus(s.state.LevelSteps, s.state.Lives)
	s.state.Score += bonus
	s.confetti()
	s.cues.Play(core.CueWin)
	s.emit(Event{Kind: EventLevelComplete, Level: s.state.Level, Bonus: bonus})
}

// NextLevel continues after a completed level. After the last level the run
// ends in the all-complete phase.
func (s *Sim) NextLevel() {
	if s.state.Phase != PhaseLevelComplete {
		return
	}
	if s.state.Level < s.state.MaxLevel {
		s.cues.Play(core.CueLevelComplete)
		s.StartLevel(s.state.Level + 1)
		return
	}
	s.state.Phase = PhaseAllComplete
	s.confetti()
	s.emit(Event{Kind: EventAllComplete, Level: s.state.Level})
}

// Restart resets every run field and starts the same grade again.
func (s *Sim) Restart() {
	s.Start(s.state.Grade)
}

// Resize stages a new board size. It takes effect at the next level start so
// a step never sees the board change under it. Before the first start it
// applies immediately.
func (s *Sim) Resize(geo Geometry) {
	if s.state.Phase == PhaseIdle {
		s.board.Geo = geo
		s.pending = nil
		return
	}
	if geo == s.board.Geo {
		s.pending = nil
		return
	}
	s.pending = &geo
}

func (s *Sim) respawn() {
	s.board.ResetSnake()
	s.dir = DirRight
	s.nextDir = DirRight
}

func (s *Sim) confetti() {
	cx, cy := s.board.Geo.CanvasCenter()
	s.effects.Confetti(cx, cy, s.board.Geo.CellSize)
}

func (s *Sim) emit(e Event) {
	s.events = append(s.events, e)
}

// TakeEvents returns the events raised since the previous call.
func (s *Sim) TakeEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// State returns a copy of the run state.
func (s *Sim) State() RunState { return s.state }

// Running reports whether steps are being accepted.
func (s *Sim) Running() bool { return s.state.Running }

// Snake returns the snake cells, head first. Callers must not modify it.
func (s *Sim) Snake() []Cell { return s.board.Snake }

// Food returns the food tiles. Callers must not modify it.
func (s *Sim) Food() []FoodItem { return s.board.Food }

// Geometry returns the board currently in play.
func (s *Sim) Geometry() Geometry { return s.board.Geo }

// PendingGeometry returns a staged resize, if any.
func (s *Sim) PendingGeometry() (Geometry, bool) {
	if s.pending == nil {
		return Geometry{}, false
	}
	return *s.pending, true
}

// Direction returns the committed direction.
func (s *Sim) Direction() Direction { return s.dir }

// NextDirection returns the staged direction.
func (s *Sim) NextDirection() Direction { return s.nextDir }

// Interval returns the current step interval.
func (s *Sim) Interval() time.Duration { return s.interval }

// Effects returns the effects system fed by this simulation.
func (s *Sim) Effects() *Effects { return s.effects }
