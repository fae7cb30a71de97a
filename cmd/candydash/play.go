package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/core"
	"github.com/vovakirdan/candy-dash/internal/game"
	"github.com/vovakirdan/candy-dash/internal/platform/tui"
	"github.com/vovakirdan/candy-dash/internal/storage"
)

var (
	flagDifficulty       string
	flagChangeDifficulty bool
	flagLogFile          string
	flagDebug            bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Open the level menu and play",
	Long: `Open the level menu, pick a level and a difficulty, and play.

Levels:
  practice - Learn the controls, no score
  level1   - Candies score, enemies appear as you eat
  level2   - Candies make you grow, fruit shrinks you back
  level3   - Level 2 against the clock

Controls:
  Arrows/WASD/hjkl - Move
  Enter            - Select
  Esc/B            - Back to the level menu
  Tab              - Run history (from the level menu)
  Q/Ctrl+C         - Quit

Examples:
  candydash play
  candydash play level2 --difficulty hard
  candydash play --change-difficulty
  candydash play --log ./candydash.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty: easy, medium, hard (default from config)")
	playCmd.Flags().BoolVar(&flagChangeDifficulty, "change-difficulty", false, "Offer a difficulty change between levels")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log spawns and other debug detail")
}

func runPlay(cmd *cobra.Command, args []string) {
	settings := loadSettings()

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

	difficulty := settings.Difficulty.Default
	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		difficulty = d
	}

	allowChange := settings.Difficulty.AllowChange
	if cmd.Flags().Changed("change-difficulty") {
		allowChange = flagChangeDifficulty
	}

	// The terminal belongs to Bubble Tea, so logs only go to a file.
	logOut := io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "candydash",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Settings:    settings,
		Logger:      logger,
		Runtime:     runtime,
		Mode:        mode,
		Difficulty:  difficulty,
		AllowChange: allowChange,
	}

	scores, err := storage.NewFileStore(flagScoreFile, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score file: %v\n", err)
	} else {
		opts.Scores = scores
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		// Continue without history - the game still works
	} else {
		opts.History = store
	}

	runErr := tui.Run(opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
