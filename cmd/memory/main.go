// memory is a card matching game for the terminal.
//
// Usage:
//
//	memory play              - Start the game menu
//	memory play --load       - Continue the saved game
//	memory serve             - Start SSH server for remote play
//	memory scores            - Show high scores
//	memory catalog           - List the card catalog
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible deals
//	--db <path>     - Set database path (default: ~/.memory/scores.db)
//	--save <path>   - Set save file path (default: from config)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/catalog"
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/memory"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagSavePath    string
	flagConfig      string
	flagCatalogPath string
	flagLogLevel    string
	flagLogFile     string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "memory",
	Short: "Memory - Match pairs of cards in your terminal",
	Long: `Memory is a terminal card matching game. Every card is dealt twice;
turn two at a time and clear the board in as few turns as you can.

Available commands:
  play     - Open the menu or jump straight into a game
  serve    - Start SSH server for remote play
  scores   - View high scores
  catalog  - Show the card catalog

Examples:
  memory play
  memory play --rows 4 --cols 4
  memory play --load
  memory serve --ssh :2222
  memory scores --grid 4x4`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.memory/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagSavePath, "save", "", "Path to save file (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalogPath, "catalog", "", "Path to custom card catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(catalogCmd)
}

// newLogger builds the process logger. Without --log-file it writes to
// fallback, which is io.Discard while the game owns the terminal.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		path, expErr := config.ExpandHome(flagLogFile)
		if expErr != nil {
			return nil, nil, expErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "memory",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGame reads the game config and the card catalog.
func loadGame() (config.MemoryConfig, *catalog.Catalog, error) {
	cfg, err := config.LoadMemory(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	cat, err := catalog.Load(flagCatalogPath)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, cat, nil
}

// settingsFor converts the config into session settings, applying --seed.
func settingsFor(cfg config.MemoryConfig) memory.Settings {
	settings := memory.SettingsFromConfig(cfg)
	settings.Seed = flagSeed
	return settings
}

// savePath picks the --save flag over the configured path.
func savePath(cfg config.MemoryConfig) string {
	if flagSavePath != "" {
		return flagSavePath
	}
	return cfg.Persistence.SavePath
}
