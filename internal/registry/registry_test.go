package registry

import (
	"testing"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"
)

type stubGame struct {
	env Env
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", "Stub", func(env Env) Game {
		return &stubGame{env: env}
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List should include the stub with its title")
	}

	g, err := Create("zz_stub", Env{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	env := g.(*stubGame).env
	if env.Logger == nil || env.Cues == nil || env.Config != config.Default() {
		t.Errorf("Create should fill env defaults, got %+v", env)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist", Env{}); err == nil {
		t.Error("Create of an unknown id should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func(Env) Game { return &stubGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", "Dup", func(Env) Game { return &stubGame{} })
}
