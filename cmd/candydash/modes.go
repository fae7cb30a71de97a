package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List levels and their rules",
	Long: `Shows every level with the piece counts and timers it uses at the
chosen difficulty.

Examples:
  candydash modes
  candydash modes --difficulty hard`,
	Run: runModes,
}

func init() {
	modesCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard (default from config)")
}

func runModes(_ *cobra.Command, _ []string) {
	settings := loadSettings()

	difficulty := settings.Difficulty.Default
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	fmt.Printf("Levels at %s difficulty:\n", difficulty.Title())
	fmt.Println()
	fmt.Printf("  %-10s  %-8s  %4s  %7s  %5s  %-12s  %s\n", "ID", "Title", "Dots", "Enemies", "Fruit", "Fruit moves", "Time limit")
	fmt.Printf("  %-10s  %-8s  %4s  %7s  %5s  %-12s  %s\n", "--", "-----", "----", "-------", "-----", "-----------", "----------")

	for _, mode := range game.Modes {
		mc, err := game.NewModeConfig(mode, difficulty, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fruitMoves, limit := "-", "-"
		if mc.Fruit {
			fruitMoves = "every " + mc.FruitInterval.String()
		}
		if mc.GameTimer {
			limit = mc.GameDuration.String()
		}
		enemies := "-"
		if mc.Enemies {
			enemies = fmt.Sprintf("%d+", mc.EnemyCount)
		}

		fmt.Printf("  %-10s  %-8s  %4d  %7s  %5d  %-12s  %s\n",
			mode, mode.Title(), mc.DotCount, enemies, mc.FruitCount, fruitMoves, limit)
	}

	fmt.Println()
	fmt.Println("Use 'candydash guide <level>' for the rules of a level.")
}
