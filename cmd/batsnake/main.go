// batsnake is a Gotham-themed Snake game for the terminal.
//
// Usage:
//
//	batsnake                  - Open the start menu
//	batsnake play             - Play, optionally skipping the menu
//	batsnake list             - List editions, difficulties and heroes
//	batsnake scores [edition] - Show the record and best runs
//	batsnake serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Settings YAML (default: ~/.batsnake/configs/snake.yaml)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Run history database (default from settings)
//	--log-file <path>  - Log destination (default: ~/.batsnake/batsnake.log)
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/platform/tui"
	"github.com/vovakirdan/batsnake/internal/storage"

	// Register editions
	_ "github.com/vovakirdan/batsnake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "batsnake",
	Short: "Batman Snake - guard Gotham from your terminal",
	Long: `Batman Snake is a terminal Snake game with Gotham flavour: pick a
difficulty and a hero, eat food, grab Bat-Boosts and dodge Joker Traps.

Available commands:
  play     - Play (opens the menu unless --skip-menu)
  list     - Show editions, difficulties and heroes
  scores   - View the record and best runs
  serve    - Start SSH server for remote play

Examples:
  batsnake
  batsnake play --difficulty "dark knight" --hero robin --skip-menu
  batsnake play --edition classic
  batsnake scores gotham
  batsnake serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.batsnake/batsnake.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings resolves the settings file before any command runs.
func loadSettings(_ *cobra.Command, _ []string) error {
	var err error
	settings, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath == "" {
		flagDBPath = settings.Storage.HistoryDB
	}
	return nil
}

// newLogger opens the log file. The TUI owns the terminal, so logs never
// go to stdout; when the file cannot be opened logging is discarded.
func newLogger() (*log.Logger, io.Closer) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		path := config.ExpandPath(flagLogFile)
		//nolint:errcheck // Best-effort directory creation
		os.MkdirAll(filepath.Dir(path), 0o755)
		if f, ferr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); ferr == nil {
			w, closer = f, f
		}
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "batsnake",
		Level:           level,
	}), closer
}

// openServices wires the history database and high score backend.
// A missing database is not fatal: the game runs with file scores.
func openServices(logger *log.Logger) (tui.Services, func()) {
	history, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("history disabled", "error", err)
		history = nil
	}

	svc := tui.Services{
		Settings: settings,
		Scores:   storage.NewHighScoreStore(settings.Storage, history, logger),
		History:  history,
		Logger:   logger,
	}
	return svc, func() {
		if history != nil {
			history.Close()
		}
	}
}

func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.Seed = flagSeed
	return cfg
}
