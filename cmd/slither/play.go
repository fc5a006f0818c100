package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelabs/slither/internal/config"
	"github.com/arcadelabs/slither/internal/core"
	"github.com/arcadelabs/slither/internal/engine"
	"github.com/arcadelabs/slither/internal/platform/tui"
	"github.com/arcadelabs/slither/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the game in the local terminal. You will be asked to sign in
or register; press Ctrl+G on the login screen to play as a guest.

Controls:
  WASD/Arrows - Steer
  P/Esc       - Pause
  R           - Restart (after game over)
  T           - Score history
  Q/Ctrl+C    - Quit

Examples:
  slither play
  slither play --seed 42
  slither play --config ./my-game.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	var runErr error
	st, err := store.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
		// Continue without storage - no profiles to sign into, so skip the
		// form and go straight to a guest game.
		runErr = tui.Run(engine.New(gameCfg, flagSeed), nil, "", cfg)
	} else {
		runErr = tui.RunSession(st, gameCfg, cfg)
		st.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
