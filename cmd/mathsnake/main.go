// mathsnake is an arithmetic snake game for the terminal: steer the snake
// over + - × ÷ food until the running value hits the level's target.
//
// Usage:
//
//	mathsnake play [grade]    - Play a grade directly
//	mathsnake menu            - Pick grade and start level interactively
//	mathsnake grades          - List grades and their operators
//	mathsnake levels          - Print the level chart
//	mathsnake config          - Print the default rules YAML
//	mathsnake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Rules YAML (default: search ~/.mathsnake/configs, ./configs)
//	--grade <1-4>      - Override the configured grade
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/math-snake/internal/config"
	"github.com/vovakirdan/math-snake/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/math-snake/internal/games/mathsnake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagGrade    string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mathsnake",
	Short: "Math Snake - arithmetic snake in your terminal",
	Long: `Math Snake is a terminal snake game for practising arithmetic.
Every food tile carries an operation. Eat your way from 1 to the
level's target; grades unlock multiplication and division.

Available commands:
  play     - Play a grade directly
  menu     - Interactive grade and level picker
  grades   - Show all grades
  levels   - Show targets and speeds per level
  config   - Print the default rules
  serve    - Start SSH server for remote play

Examples:
  mathsnake menu
  mathsnake play 3
  mathsnake play --grade 4 --level 10
  mathsnake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagGrade, "grade", "", "Grade 1-4 (overrides the rules file)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadRules reads the rules file and applies a grade override.
func loadRules(grade string) (config.Config, error) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		return rules, err
	}
	if grade == "" {
		grade = flagGrade
	}
	if err := config.ApplyGrade(&rules, grade); err != nil {
		return rules, err
	}
	return rules, nil
}

// openLogger returns a logger writing to --log-file, or discarding output
// so the alt screen stays clean.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "mathsnake",
		Level:           level,
	})
	return logger, func() { f.Close() }, nil
}

// runtimeConfig sizes the first frame from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
