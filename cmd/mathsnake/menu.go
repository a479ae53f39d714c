package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-snake/internal/audio"
	"github.com/vovakirdan/math-snake/internal/platform/tui"
	"github.com/vovakirdan/math-snake/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a grade and start level interactively",
	Long: `Start Math Snake in interactive menu mode.

Pick a grade, then the level to start on. Leaving a game (Esc while
paused or after game over) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Level chart
  Esc          - Back
  Q            - Quit

Examples:
  mathsnake menu
  mathsnake menu --fps 30
  mathsnake menu --config ./my-rules.yaml`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runMenu(_ *cobra.Command, _ []string) {
	rules, err := loadRules("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(rules, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsChart {
			goBack, chartErr := tui.RunChart(rules, cfg.ScreenW, cfg.ScreenH)
			if chartErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", chartErr)
			}
			if goBack {
				continue
			}
			break
		}

		env := registry.Env{Config: rules, Cues: cues, Logger: logger}
		game, err := tui.NewGame(menuResult.GameID, menuResult.Level, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}
}
