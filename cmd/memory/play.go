package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
	"github.com/vovakirdan/tui-memory/internal/platform/tui"
	"github.com/vovakirdan/tui-memory/internal/savefile"
	"github.com/vovakirdan/tui-memory/internal/storage"
)

var (
	flagRows       int
	flagCols       int
	flagDifficulty string
	flagLoad       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play memory",
	Long: `Start the game menu, or jump straight into a game.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Turn the card under the cursor
  R                - Restart with a new deal
  Ctrl+S           - Save and leave
  Ctrl+L           - Load the saved game
  Q/Esc            - Back to menu (offers to save)
  Ctrl+C           - Quit

Difficulty options:
  easy   - 2x4 grid
  normal - 4x4 grid
  hard   - 6x6 grid

Examples:
  memory play
  memory play --difficulty hard
  memory play --rows 4 --cols 6
  memory play --load`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (skips the menu)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (skips the menu)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagLoad, "load", false, "Continue the saved game")
}

func runPlay(cmd *cobra.Command, _ []string) {
	gameCfg, cat, err := loadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	config.ApplyMemoryPreset(&gameCfg, preset)

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	saves, err := savefile.New(savePath(gameCfg), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: saving disabled: %v\n", err)
		saves = nil
	}

	env := tui.Env{
		Catalog:  cat,
		Settings: settingsFor(gameCfg),
		Store:    store,
		Saves:    saves,
		Logger:   logger,
	}

	start := tui.Start{
		Rows: gameCfg.Grid.Rows,
		Cols: gameCfg.Grid.Cols,
	}
	switch {
	case flagLoad:
		start.Skip = true
		start.Mode = tui.StartLoad
	case cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols") || preset != "":
		start.Skip = true
		start.Mode = tui.StartNew
		if flagRows > 0 {
			start.Rows = flagRows
		}
		if flagCols > 0 {
			start.Cols = flagCols
		}
	}

	runErr := tui.Run(env, cfg, start)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
