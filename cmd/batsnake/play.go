package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/batsnake/internal/platform/tui"
	"github.com/vovakirdan/batsnake/internal/registry"
)

var (
	flagEdition    string
	flagDifficulty string
	flagHero       string
	flagSkipMenu   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Batman Snake",
	Long: `Open the start menu, or jump straight into a game with --skip-menu.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  Esc          - Pause, then back to menu
  Enter/R      - Restart after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Editions:
  gotham   - Heroes, Bat-Boosts and Joker Traps
  classic  - Plain snake, no power-ups

Examples:
  batsnake play
  batsnake play --difficulty vigilante --hero batgirl --skip-menu
  batsnake play --edition classic --skip-menu
  batsnake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagEdition, "edition", "gotham", "Edition: gotham or classic")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty name (default: first configured)")
	playCmd.Flags().StringVar(&flagHero, "hero", "", "Hero name (default from settings)")
	playCmd.Flags().BoolVar(&flagSkipMenu, "skip-menu", false, "Start playing immediately")
}

func runPlay(_ *cobra.Command, _ []string) error {
	edition := flagEdition
	if edition == "" {
		edition = "gotham"
	}
	if !registry.Exists(edition) {
		return fmt.Errorf("unknown edition %q (run 'batsnake list')", edition)
	}

	// Resolve names up front so typos fail before the TUI starts
	if flagDifficulty != "" {
		d, err := settings.Difficulty(flagDifficulty)
		if err != nil {
			return err
		}
		flagDifficulty = d.Name
	}
	if flagHero != "" {
		c, err := settings.Character(flagHero)
		if err != nil {
			return err
		}
		flagHero = c.Name
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	logger, closer := newLogger()
	defer closer.Close()

	services, closeServices := openServices(logger)
	defer closeServices()

	return tui.Run(services, runtimeConfig(width, height), tui.RunOptions{
		Selection: tui.Selection{
			Edition:    edition,
			Difficulty: flagDifficulty,
			Character:  flagHero,
		},
		SkipMenu: flagSkipMenu,
	})
}
