package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "mathsnake.yaml"

// Load reads Math Snake rules.
// Search order: customPath -> ~/.mathsnake/configs/mathsnake.yaml -> ./configs/mathsnake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the rules describe a playable game.
func (c Config) Validate() error {
	var errs []error
	if !c.Grade.Valid() {
		errs = append(errs, fmt.Errorf("grade %q must be 1-4", c.Grade))
	}
	if c.Grid.Cols < 3 || c.Grid.Rows < 1 {
		errs = append(errs, fmt.Errorf("grid %dx%d too small", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, errors.New("grid.cell_size must be positive"))
	}
	if c.Levels.MaxLevel < 1 {
		errs = append(errs, errors.New("levels.max_level must be at least 1"))
	}
	if c.Levels.TargetSpread < 1 {
		errs = append(errs, errors.New("levels.target_spread must be at least 1"))
	}
	if c.Speed.Base <= 0 || c.Speed.Min <= 0 {
		errs = append(errs, errors.New("speed.base and speed.min must be positive"))
	}
	if c.Speed.EveryLevels < 1 {
		errs = append(errs, errors.New("speed.every_levels must be at least 1"))
	}
	if c.Rules.Lives < 1 {
		errs = append(errs, errors.New("rules.lives must be at least 1"))
	}
	if c.Rules.SpawnAttempts < 1 {
		errs = append(errs, errors.New("rules.spawn_attempts must be at least 1"))
	}
	if c.Rules.MinFood < 0 {
		errs = append(errs, errors.New("rules.min_food must not be negative"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume %.2f must be within 0..1", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyGrade overrides the configured grade. An empty string keeps it.
func ApplyGrade(cfg *Config, grade string) error {
	if grade == "" {
		return nil
	}
	g, err := ParseGrade(grade)
	if err != nil {
		return err
	}
	cfg.Grade = g
	return nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mathsnake", "configs", fileName)
}
