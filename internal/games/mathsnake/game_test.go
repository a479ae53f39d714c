package mathsnake

import (
	"strconv"
	"strings"
	"testing"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
	"github.com/vovakirdan/math-snake/internal/registry"
)

// muteSink is a recording cue sink with a mute switch.
type muteSink struct {
	cueRecorder
	muted bool
}

func (m *muteSink) Play(c core.Cue) {
	if !m.muted {
		m.cueRecorder.Play(c)
	}
}

func (m *muteSink) ToggleMute() bool {
	m.muted = !m.muted
	return m.muted
}

func (m *muteSink) Muted() bool { return m.muted }

func newTestGame(t *testing.T, grade config.Grade, seed int64) *Game {
	t.Helper()
	cfg := config.Default()
	cfg.Grade = grade
	g := New(cfg, nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: seed})
	return g
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	g1 := newTestGame(t, config.Grade4, 12345)
	g2 := newTestGame(t, config.Grade4, 12345)

	for i := range 600 {
		var in core.InputFrame
		switch i {
		case 50:
			in = frameWith(core.ActionDown)
		case 120:
			in = frameWith(core.ActionLeft)
		case 200:
			in = frameWith(core.ActionUp)
		default:
			in = core.NewInputFrame()
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Value != s2.Value || s1.Target != s2.Target {
		t.Errorf("run state diverged: %+v vs %+v", s1, s2)
	}
	if s1.Head != s2.Head || s1.Dir != s2.Dir || s1.Lives != s2.Lives {
		t.Errorf("snake diverged: %v %s vs %v %s", s1.Head, s1.Dir, s2.Head, s2.Dir)
	}
	if len(s1.Food) != len(s2.Food) {
		t.Fatalf("food count diverged: %d vs %d", len(s1.Food), len(s2.Food))
	}
	for i := range s1.Food {
		if s1.Food[i] != s2.Food[i] {
			t.Errorf("food %d diverged: %+v vs %+v", i, s1.Food[i], s2.Food[i])
		}
	}
}

func TestGameStepsAtLevelSpeed(t *testing.T) {
	g := newTestGame(t, config.Grade1, 1)
	head := g.Snapshot().Head

	// 60 fps: 400ms is 24 frames, the anchor frame comes first.
	for range 25 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Head != head {
		t.Fatal("snake moved before the interval elapsed")
	}
	g.Step(core.NewInputFrame())
	if g.Snapshot().Head != head.Add(DirRight) {
		t.Errorf("head = %v, expected one step right of %v", g.Snapshot().Head, head)
	}
}

func TestGameNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, config.Grade1, 42)

	g.Step(frameWith(core.ActionLeft))
	if g.Sim().NextDirection() == DirLeft {
		t.Error("should not allow immediate reversal from right to left")
	}

	g.Step(frameWith(core.ActionDown))
	if g.Sim().NextDirection() != DirDown {
		t.Errorf("next direction = %s, expected down", g.Sim().NextDirection())
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, config.Grade1, 1)
	g.Step(frameWith(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}

	head := g.Snapshot().Head
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Head != head {
		t.Error("snake moved while paused")
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("paused overlay missing")
	}

	g.Step(frameWith(core.ActionPause))
	if g.State().Paused {
		t.Error("P should resume")
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, config.Grade2, 5)
	g.Sim().state.Lives = 1
	g.Sim().board.Food = nil

	// Head straight into the right wall.
	for i := 0; i < 60*8 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("running into the wall on the last life should end the game")
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay missing")
	}

	g.Step(frameWith(core.ActionRestart))
	snap := g.Snapshot()
	if g.State().GameOver || snap.Lives != 3 || snap.Level != 1 || snap.Score != 0 {
		t.Errorf("restart did not reset the run: %+v", snap)
	}
}

func TestGameLevelCompletePrompt(t *testing.T) {
	g := newTestGame(t, config.Grade1, 9)
	sim := g.Sim()
	head := sim.Snake()[0]
	sim.state.Value = sim.state.Target - 1
	sim.board.Food = []FoodItem{NewFood(head.Add(DirRight), OpAdd, 1)}

	for i := 0; i < 60 && sim.State().Phase == PhasePlaying; i++ {
		g.Step(core.NewInputFrame())
	}
	if sim.State().Phase != PhaseLevelComplete {
		t.Fatalf("phase = %s, expected level complete", sim.State().Phase)
	}

	// The prompt waits a second; Enter before that is ignored.
	g.Step(frameWith(core.ActionConfirm))
	if sim.State().Level != 1 {
		t.Fatal("next level started before the prompt appeared")
	}

	for range 60 {
		g.Step(core.NewInputFrame())
	}
	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Level 1 complete!") {
		t.Errorf("level complete overlay missing:\n%s", screen.String())
	}

	g.Step(frameWith(core.ActionConfirm))
	if sim.State().Level != 2 || sim.State().Phase != PhasePlaying {
		t.Errorf("Enter should start level 2, state %+v", sim.State())
	}
}

func TestGameTooSmall(t *testing.T) {
	cfg := config.Default()
	g := New(cfg, nil, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	if !g.Snapshot().TooSmall {
		t.Fatal("20x10 should be too small")
	}
	head := g.Snapshot().Head
	for range 100 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Head != head {
		t.Error("game should not advance while the window is too small")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("too small overlay missing")
	}

	g.Resize(80, 23)
	if g.Snapshot().TooSmall {
		t.Error("the minimum board should fit after growing the window")
	}
}

func TestGameResizeStagesBoard(t *testing.T) {
	g := newTestGame(t, config.Grade1, 3)
	before := g.Sim().Geometry()

	g.Resize(40, 16)
	if g.Sim().Geometry() != before {
		t.Error("board must not change mid-level")
	}
	if !g.Snapshot().TooSmall {
		t.Error("a 19-column board does not fit 40 columns")
	}
	pending, ok := g.Sim().PendingGeometry()
	if !ok || pending.Cols != 9 || pending.Rows != 12 {
		t.Errorf("pending = %+v, %v", pending, ok)
	}
}

func TestGameMute(t *testing.T) {
	cfg := config.Default()
	sink := &muteSink{}
	g := New(cfg, sink, nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 23, TickRate: 60, Seed: 1})

	g.Step(frameWith(core.ActionMute))
	if !sink.Muted() {
		t.Fatal("M should mute")
	}

	screen := core.NewScreen(80, 23)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "♪ off") {
		t.Errorf("HUD should show sound off, got %q", screen.Row(0))
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, config.Grade3, 77)
	screen := core.NewScreen(80, 23)
	g.Render(screen)

	st := g.Sim().State()
	hud := screen.Row(0)
	for _, want := range []string{"Level 1/20", "Target", "Score 0", "Grade 3", "♥♥♥"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(hud, "Target "+strconv.Itoa(st.Target)) {
		t.Errorf("HUD %q should show target %d", hud, st.Target)
	}

	out := screen.String()
	for _, f := range g.Sim().Food() {
		if !strings.Contains(out, f.Label) {
			t.Errorf("food label %s not rendered", f.Label)
		}
	}
	if !strings.ContainsRune(out, headRune) {
		t.Error("snake head not rendered")
	}

	ox, oy := g.boardOrigin(screen)
	if c := screen.GetCell(ox, oy); c.Rune != '┌' {
		t.Errorf("board frame corner = %q", c.Rune)
	}
	head := g.Sim().Snake()[0]
	if c := screen.GetCell(ox+1+head.X*CellWidth, oy+1+head.Y); c.Rune != headRune || c.Color != colorHead {
		t.Errorf("head cell = %+v", c)
	}
}

func TestGameRegistered(t *testing.T) {
	for _, grade := range config.Grades() {
		g, err := registry.Create(GameID(grade), registry.Env{})
		if err != nil {
			t.Fatalf("grade %s not registered: %v", grade, err)
		}
		if g.ID() != "grade"+string(grade) {
			t.Errorf("ID = %s", g.ID())
		}
		if !strings.Contains(g.Title(), grade.Operators()) {
			t.Errorf("title %q should list the operators", g.Title())
		}
	}
}
