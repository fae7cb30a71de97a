package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
	"github.com/vovakirdan/candy-dash/internal/platform/tui"
	"github.com/vovakirdan/candy-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
	flagScoresBoard bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded runs and the highest score",
	Long: `Display the highest score mark and the best recorded runs, for one
level or for all of them.

Examples:
  candydash scores
  candydash scores level2
  candydash scores --board
  candydash scores level1 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded runs of the level (or all levels)")
	scoresCmd.Flags().BoolVar(&flagScoresBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(_ *cobra.Command, args []string) {
	var mode game.Mode
	if len(args) == 1 {
		m, err := game.ParseMode(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'candydash modes' to see available levels.")
			os.Exit(1)
		}
		mode = m
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresBoard {
		size := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			size.ScreenW, size.ScreenH = w, h
		}
		if err := tui.RunScoreboard(store, size.ScreenW, size.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if flagScoresClear {
		if err := store.ClearRuns(ctx, string(mode)); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	scores, err := storage.NewFileStore(flagScoreFile, nil)
	if err == nil {
		if best, loadErr := scores.LoadHighScore(ctx); loadErr == nil {
			fmt.Printf("Highest score mark: %d\n", best)
			fmt.Println()
		}
	}

	title := "All levels"
	if mode != "" {
		title = mode.Title()
	}

	runs, err := store.TopRuns(ctx, string(mode), flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'candydash play level1' to get on the board!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-8s  %5s  %8s  %s\n", "Rank", "Score", "Level", "Diff", "End", "Dots", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-8s  %5s  %8s  %s\n", "----", "-----", "-----", "----", "---", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %-6s  %-8s  %5d  %8s  %s\n",
			i+1, r.Score, game.Mode(r.Mode).Title(), r.Difficulty, r.Reason, r.DotsEaten,
			r.Duration.Round(time.Second), r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if mode != "" {
		if best, err := store.HighScore(ctx, string(mode)); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
		if stats, err := store.GetModeStats(ctx, string(mode)); err == nil && stats.RunsCount > 0 {
			fmt.Printf("Runs: %d  Average: %.1f  Candies eaten: %d\n", stats.RunsCount, stats.AvgScore, stats.DotsEaten)
		}
		return
	}

	all, err := store.GetAllModeStats(ctx)
	if err != nil {
		return
	}
	for _, m := range game.Modes {
		if s, ok := all[string(m)]; ok {
			fmt.Printf("%-8s  runs %-4d best %-6d average %.1f\n", m.Title(), s.RunsCount, s.HighScore, s.AvgScore)
		}
	}
}
