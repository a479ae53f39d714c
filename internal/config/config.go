// Package config provides YAML-based rule loading, grade handling and the
// speed schedule for Math Snake.
package config

import "time"

// Config contains all tunable rules for a Math Snake run.
type Config struct {
	Grade  Grade        `yaml:"grade"`
	Grid   GridConfig   `yaml:"grid"`
	Levels LevelsConfig `yaml:"levels"`
	Speed  SpeedConfig  `yaml:"speed"`
	Rules  RulesConfig  `yaml:"rules"`
	Bonus  BonusConfig  `yaml:"bonus"`
	Audio  AudioConfig  `yaml:"audio"`
}

// GridConfig is the default board used before a sizing provider reports in.
type GridConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // pixels per cell, used by effects
}

// LevelsConfig defines level count and target generation.
// Target for level L is TargetBase + L*TargetPerLevel + rand[0, TargetSpread).
type LevelsConfig struct {
	MaxLevel       int `yaml:"max_level"`
	TargetBase     int `yaml:"target_base"`
	TargetPerLevel int `yaml:"target_per_level"`
	TargetSpread   int `yaml:"target_spread"`
}

// SpeedConfig defines the step interval schedule.
type SpeedConfig struct {
	Base        time.Duration `yaml:"base"`
	Min         time.Duration `yaml:"min"`
	Decrement   time.Duration `yaml:"decrement"`
	EveryLevels int           `yaml:"every_levels"`
}

// RulesConfig defines lives, rewards and food population.
type RulesConfig struct {
	Lives         int `yaml:"lives"`
	Reward        int `yaml:"reward"`
	MinFood       int `yaml:"min_food"`
	SpawnAttempts int `yaml:"spawn_attempts"`
}

// BonusConfig defines the level-complete bonus:
// max(0, StepBudget - steps*StepPenalty) + lives*LifeBonus.
type BonusConfig struct {
	StepBudget  int `yaml:"step_budget"`
	StepPenalty int `yaml:"step_penalty"`
	LifeBonus   int `yaml:"life_bonus"`
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"` // 0..1
}

// TargetRange returns the smallest and largest target a level can draw.
func (l LevelsConfig) TargetRange(level int) (lo, hi int) {
	lo = l.TargetBase + level*l.TargetPerLevel
	return lo, lo + max(l.TargetSpread, 1) - 1
}

// LevelBonus returns the bonus for finishing a level after eating steps
// food items with lives remaining.
func (b BonusConfig) LevelBonus(steps, lives int) int {
	stepBonus := b.StepBudget - steps*b.StepPenalty
	if stepBonus < 0 {
		stepBonus = 0
	}
	return stepBonus + lives*b.LifeBonus
}

// Interval returns the step interval for a 1-based level:
// max(Min, Base - floor((level-1)/EveryLevels)*Decrement).
func (s SpeedConfig) Interval(level int) time.Duration {
	every := s.EveryLevels
	if every <= 0 {
		every = 1
	}
	if level < 1 {
		level = 1
	}
	interval := s.Base - time.Duration((level-1)/every)*s.Decrement
	if interval < s.Min {
		return s.Min
	}
	return interval
}
