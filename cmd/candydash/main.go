// candydash is a terminal arcade game: steer a hungry square around the
// board, eat candies, dodge enemies and beat the highest score mark.
//
// Usage:
//
//	candydash play [level]   - Open the level menu and play
//	candydash modes          - List levels and their rules
//	candydash guide [level]  - Show the level guide and controls
//	candydash scores [level] - Show recorded runs and the highest score
//	candydash serve          - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set run history path (default: ~/.candydash/candydash.db)
//	--score-file <path>  - Set highest score file (default: ~/.candydash/highestscore.txt)
//	--config <path>      - Use a custom candydash.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/candy-dash/internal/config"
	"github.com/vovakirdan/candy-dash/internal/storage"
)

var (
	// Global flags
	flagSeed      int64
	flagDBPath    string
	flagScoreFile string
	flagConfig    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "candydash",
	Short: "Candy Dash - eat the candies, dodge the enemies",
	Long: `Candy Dash is a terminal arcade game. Steer your square around the
board, eat candies for points and keep away from the enemies that
appear as you feast.

Available commands:
  play     - Open the level menu and play
  modes    - List levels and their rules
  guide    - Show the level guide and controls
  scores   - Show recorded runs and the highest score
  serve    - Start SSH server for remote play

Examples:
  candydash play
  candydash play level2 --difficulty hard
  candydash scores level1
  candydash serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.candydash/candydash.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagScoreFile, "score-file", storage.DefaultHighScorePath, "Path to highest score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom candydash.yaml")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads the configuration or exits with an error.
func loadSettings() config.Config {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return settings
}
