package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestSpeedInterval(t *testing.T) {
	s := Default().Speed
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 400 * time.Millisecond},
		{4, 400 * time.Millisecond},
		{5, 380 * time.Millisecond},
		{9, 360 * time.Millisecond},
		{20, 320 * time.Millisecond},
		{1000, 60 * time.Millisecond},
		{0, 400 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := s.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, expected %v", tt.level, got, tt.want)
		}
	}
}

func TestLevelBonus(t *testing.T) {
	b := Default().Bonus
	tests := []struct {
		steps, lives, want int
	}{
		{3, 2, 550},
		{0, 3, 800},
		{10, 1, 100},
		{20, 0, 0},
	}
	for _, tt := range tests {
		if got := b.LevelBonus(tt.steps, tt.lives); got != tt.want {
			t.Errorf("LevelBonus(%d, %d) = %d, expected %d", tt.steps, tt.lives, got, tt.want)
		}
	}
}

func TestTargetRange(t *testing.T) {
	lv := Default().Levels
	if lo, hi := lv.TargetRange(1); lo != 14 || hi != 18 {
		t.Errorf("TargetRange(1) = %d..%d, expected 14..18", lo, hi)
	}
	if lo, hi := lv.TargetRange(20); lo != 90 || hi != 94 {
		t.Errorf("TargetRange(20) = %d..%d, expected 90..94", lo, hi)
	}
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	cfg, err := Parse([]byte("grade: \"3\"\nrules:\n  lives: 5\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Grade != Grade3 || cfg.Rules.Lives != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Rules.MinFood != 3 || cfg.Speed.Base != 400*time.Millisecond {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	inputs := []string{
		"grade: \"7\"\n",
		"rules:\n  lives: 0\n",
		"grid:\n  cols: 2\n",
		"speed:\n  every_levels: 0\n",
		"levels: [1, 2]\n",
		"audio:\n  volume: 1.5\n",
	}
	for _, in := range inputs {
		if _, err := Parse([]byte(in)); err == nil {
			t.Errorf("Parse(%q) should fail", in)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(path, []byte("levels:\n  max_level: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Levels.MaxLevel != 5 {
		t.Errorf("MaxLevel = %d, expected 5", cfg.Levels.MaxLevel)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestGrades(t *testing.T) {
	tests := []struct {
		grade    Grade
		multiply bool
		divide   bool
	}{
		{Grade1, false, false},
		{Grade2, false, false},
		{Grade3, true, false},
		{Grade4, true, true},
	}
	for _, tt := range tests {
		if tt.grade.AllowsMultiply() != tt.multiply || tt.grade.AllowsDivide() != tt.divide {
			t.Errorf("grade %s operators = %q", tt.grade, tt.grade.Operators())
		}
	}

	if _, err := ParseGrade("5"); err == nil {
		t.Error("ParseGrade(5) should fail")
	}
	cfg := Default()
	if err := ApplyGrade(&cfg, "4"); err != nil || cfg.Grade != Grade4 {
		t.Errorf("ApplyGrade(4) = %v, grade %s", err, cfg.Grade)
	}
	if err := ApplyGrade(&cfg, ""); err != nil || cfg.Grade != Grade4 {
		t.Error("empty grade should keep the current one")
	}
}
