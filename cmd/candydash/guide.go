package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-dash/internal/game"
)

var guideCmd = &cobra.Command{
	Use:   "guide [level]",
	Short: "Show the level guide and controls",
	Long: `Prints the guide shown before a level starts. Without a level,
prints the guide of every level.

Examples:
  candydash guide
  candydash guide level3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGuide,
}

func runGuide(_ *cobra.Command, args []string) {
	modes := game.Modes
	if len(args) == 1 {
		mode, err := game.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		modes = []game.Mode{mode}
	}

	for _, mode := range modes {
		fmt.Printf("%s\n  %s\n\n", mode.Title(), mode.Description())
	}

	fmt.Println("Controls: arrows, WASD or hjkl to move; Esc to leave a level; Q to quit.")
	fmt.Println("The highest score mark counts from Level 1 on; Practice is never recorded.")
}
