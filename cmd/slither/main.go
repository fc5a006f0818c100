// slither is a terminal snake game with per-user profiles and score history.
//
// Usage:
//
//	slither play             - Play in the local terminal
//	slither scores <user>    - Show a user's score and login history
//	slither serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set profile database path (default: ~/.slither/profiles.db)
//	--config <path>  - Path to custom game config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slither",
	Short: "Slither - snake in your terminal",
	Long: `Slither is a terminal snake game. Sign in to keep a score and
login history per player, or play as a guest.

Available commands:
  play     - Play in the local terminal
  scores   - View a player's score and login history
  serve    - Start SSH server for remote play

Examples:
  slither play
  slither play --config ./my-game.yaml
  slither scores alice
  slither serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/profiles.db", "Path to profile database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
