package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mathsnake.yaml
var defaultYAML []byte

// Default returns the built-in Math Snake rules.
func Default() Config {
	return Config{
		Grade: Grade1,
		Grid: GridConfig{
			Cols:     20,
			Rows:     15,
			CellSize: 40,
		},
		Levels: LevelsConfig{
			MaxLevel:       20,
			TargetBase:     10,
			TargetPerLevel: 4,
			TargetSpread:   5,
		},
		Speed: SpeedConfig{
			Base:        400 * time.Millisecond,
			Min:         60 * time.Millisecond,
			Decrement:   20 * time.Millisecond,
			EveryLevels: 4,
		},
		Rules: RulesConfig{
			Lives:         3,
			Reward:        10,
			MinFood:       3,
			SpawnAttempts: 100,
		},
		Bonus: BonusConfig{
			StepBudget:  500,
			StepPenalty: 50,
			LifeBonus:   100,
		},
		Audio: AudioConfig{
			Volume: 1,
		},
	}
}

// DefaultYAML returns the embedded default config file.
func DefaultYAML() []byte {
	return defaultYAML
}
