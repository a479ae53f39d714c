package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
	"github.com/vovakirdan/math-snake/internal/games/mathsnake"
	"github.com/vovakirdan/math-snake/internal/registry"
)

func newTestModel(t *testing.T, level int) Model {
	t.Helper()
	game, err := NewGame("grade2", level, registry.Env{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}, nil)
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func simOf(t *testing.T, m Model) *mathsnake.Sim {
	t.Helper()
	g, ok := m.game.(*mathsnake.Game)
	if !ok {
		t.Fatalf("game is %T", m.game)
	}
	return g.Sim()
}

func TestNewGameStartLevel(t *testing.T) {
	m := newTestModel(t, 5)
	if st := simOf(t, m).State(); st.Level != 5 || st.Grade != config.Grade2 {
		t.Errorf("started on grade %s level %d, expected grade 2 level 5", st.Grade, st.Level)
	}

	if _, err := NewGame("grade9", 1, registry.Env{}); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestModelReservesHelpLine(t *testing.T) {
	m := newTestModel(t, 1)
	if m.screen.Height() != 23 {
		t.Errorf("game screen height = %d, expected 23", m.screen.Height())
	}

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, expected 24", lines)
	}
	if !strings.Contains(view, "pause") || !strings.Contains(view, "quit") {
		t.Error("help line should list the controls")
	}
}

func TestModelSteersOnKey(t *testing.T) {
	m := newTestModel(t, 1)

	m, _ = update(t, m, runeKey("s"))
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if d := simOf(t, m).NextDirection(); d != mathsnake.DirDown {
		t.Errorf("next direction = %v, expected down", d)
	}
	if len(m.inputFrame.Order) != 0 {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelSwipe(t *testing.T) {
	m := newTestModel(t, 1)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 41, Y: 13, Action: tea.MouseActionRelease})
	m, _ = update(t, m, TickMsg(time.Now()))

	if d := simOf(t, m).NextDirection(); d != mathsnake.DirDown {
		t.Errorf("next direction = %v, expected down after swipe", d)
	}

	// A tap is not a swipe.
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 41, Y: 10, Action: tea.MouseActionRelease})
	if len(m.inputFrame.Order) != 0 {
		t.Errorf("tap produced %v", m.inputFrame.Order)
	}
}

func TestModelBackNeedsPause(t *testing.T) {
	m := newTestModel(t, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back should be ignored while playing")
	}
	m, _ = update(t, m, TickMsg(time.Now()))

	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.gameState.Paused {
		t.Fatal("game should be paused")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
	if cmd != nil {
		t.Error("embedded model should not quit the program")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, 1)
	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResizeStagesBoard(t *testing.T) {
	m := newTestModel(t, 1)
	sim := simOf(t, m)
	before := sim.Geometry()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.screen.Width() != 50 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, expected 50x19", m.screen.Width(), m.screen.Height())
	}
	if sim.Geometry() != before {
		t.Error("board should not change mid-level")
	}
	if pending, ok := sim.PendingGeometry(); !ok || pending.Cols != 12 || pending.Rows != 15 {
		t.Errorf("pending = %+v, %v; expected 12x15", pending, ok)
	}
}
