package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/math-snake/internal/registry"
)

var gradesCmd = &cobra.Command{
	Use:     "grades",
	Aliases: []string{"list"},
	Short:   "List all grades",
	Long:    `Shows every playable grade and the operators its food uses.`,
	Run:     runGrades,
}

func runGrades(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No grades available.")
		return
	}

	fmt.Println("Available grades:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mathsnake play <1-4>' to play a grade.")
}
