package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelabs/slither/internal/platform/tui"
	"github.com/arcadelabs/slither/internal/store"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores <user>",
	Short: "Show a player's score and login history",
	Long: `Display the recorded scores and logins for the given player.

Examples:
  slither scores alice
  slither scores alice --tui
  slither scores bob --db ./profiles.db`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
}

func runScores(_ *cobra.Command, args []string) {
	username := args[0]

	st, err := store.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening profile database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(st, username, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing history: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := st.Scores(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	logins, err := st.Logins(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving logins: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Player: %s\n", username)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if highScore, hsErr := st.HighScore(username); hsErr == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", highScore)
		}
	}

	fmt.Println()
	if len(logins) == 0 {
		fmt.Println("No logins recorded yet.")
		return
	}
	fmt.Printf("Last login: %s (%d recorded)\n", logins[0].Format("2006-01-02 15:04:05"), len(logins))
}
