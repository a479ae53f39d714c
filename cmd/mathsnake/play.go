package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-snake/internal/audio"
	"github.com/vovakirdan/math-snake/internal/games/mathsnake"
	"github.com/vovakirdan/math-snake/internal/platform/tui"
	"github.com/vovakirdan/math-snake/internal/registry"
)

var (
	flagLevel int
	flagMute  bool
)

var playCmd = &cobra.Command{
	Use:   "play [grade]",
	Short: "Play a grade",
	Long: `Start playing Math Snake at the given grade (1-4).

Grades:
  1, 2  - addition and subtraction
  3     - adds multiplication
  4     - adds division

Controls:
  Arrows/WASD/hjkl  - Steer (or drag with the mouse)
  P                 - Pause
  N/Enter           - Next level
  R                 - Restart (after game over)
  M                 - Sound on/off
  Esc/B             - Leave (when paused or over)
  Q/Ctrl+C          - Quit

Examples:
  mathsnake play
  mathsnake play 3
  mathsnake play 4 --level 12
  mathsnake play --config ./my-rules.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runPlay(_ *cobra.Command, args []string) {
	grade := ""
	if len(args) == 1 {
		grade = args[0]
	}

	rules, err := loadRules(grade)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagLevel < 1 || flagLevel > rules.Levels.MaxLevel {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", rules.Levels.MaxLevel)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if flagMute {
		rules.Audio.Muted = true
	}
	cues, closeAudio := audio.Open(rules.Audio, logger)
	defer closeAudio()

	env := registry.Env{Config: rules, Cues: cues, Logger: logger}
	game, err := tui.NewGame(mathsnake.GameID(rules.Grade), flagLevel, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeAudio()
		closeLog()
		os.Exit(1)
	}
}
