package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-snake/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show targets and speeds per level",
	Long: `Print the level chart for the active rules: the range each level's
target is drawn from and how fast the snake moves.

Examples:
  mathsnake levels
  mathsnake levels --config ./my-rules.yaml`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	rules, err := loadRules("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Levels - %s (%s)\n", rules.Grade.Label(), rules.Grade.Operators())
	fmt.Println()

	fmt.Printf("  %-5s  %-8s  %-6s  %s\n", "Level", "Target", "Step", "Moves/s")
	fmt.Printf("  %-5s  %-8s  %-6s  %s\n", "-----", "------", "----", "-------")
	for _, row := range tui.ChartRows(rules) {
		fmt.Printf("  %-5s  %-8s  %-6s  %s\n", row[0], row[1], row[2], row[3])
	}

	fmt.Println()
	fmt.Printf("Lives: %d   Points per food: %d   Level bonus: %d - %d per food eaten, +%d per life\n",
		rules.Rules.Lives, rules.Rules.Reward, rules.Bonus.StepBudget, rules.Bonus.StepPenalty, rules.Bonus.LifeBonus)
}
