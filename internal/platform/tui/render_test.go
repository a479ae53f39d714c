package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/math-snake/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Level 3")
	s.DrawTextColor(0, 1, "+4", core.Hex("#10b981"))
	s.DrawTextColor(3, 1, "÷2", core.Hex("#ef4444"))
	s.SetColor(0, 2, '█', core.ColorGreen)

	out := RenderScreen(s)
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("rendered %d line breaks, expected 2", n)
	}
	for _, want := range []string{"Level 3", "+4", "÷2", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStyleCacheReusesStyles(t *testing.T) {
	c := core.Hex("#123456")
	styleFor(c)
	if _, ok := styleCache.Load(c); !ok {
		t.Error("hex colour should be cached after first use")
	}
	if _, ok := styleCache.Load(core.ColorDefault); ok {
		t.Error("default colour needs no cached style")
	}
}
