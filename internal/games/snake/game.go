// Package snake implements the Gotham Snake game: a snake on a wrapping
// grid that eats food to grow, picks up timed power-ups and must avoid its
// own body.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/registry"
)

// Edition selects the rule set.
type Edition string

const (
	EditionGotham  Edition = "gotham"  // Power-ups and heroes
	EditionClassic Edition = "classic" // Plain snake
)

const (
	cellWidth = 2 // Terminal columns per grid cell
	hudHeight = 2
)

// Game adapts a Session to the platform's registry.Game interface.
type Game struct {
	edition  Edition
	settings config.Settings
	scores   core.HighScoreStore

	cfg        core.RuntimeConfig
	rng        *rand.Rand
	session    *Session
	difficulty config.Difficulty
	skin       config.Skin

	screenW  int
	screenH  int
	boardX   int
	boardY   int
	paused   bool
	tooSmall bool
}

// New creates a game of the given edition. Invalid settings fall back to
// config.Default(); a nil store keeps high scores in memory.
func New(edition Edition, settings config.Settings, scores core.HighScoreStore) *Game {
	if settings.Validate() != nil {
		settings = config.Default()
	}
	if scores == nil {
		scores = core.NewMemoryHighScores()
	}
	return &Game{
		edition:  edition,
		settings: settings,
		scores:   scores,
	}
}

func init() {
	registry.Register(string(EditionGotham), func(env registry.Env) registry.Game {
		return New(EditionGotham, env.Settings, env.Scores)
	})
	registry.Register(string(EditionClassic), func(env registry.Env) registry.Game {
		return New(EditionClassic, env.Settings, env.Scores)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.edition)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.edition == EditionClassic {
		return "Classic Snake"
	}
	return "Batman Snake"
}

// classicSkin is used by the classic edition, which has no heroes.
var classicSkin = config.Skin{
	Name:      "Snake",
	Color:     core.ColorGreen,
	HeadUp:    'O',
	HeadDown:  'O',
	HeadLeft:  'O',
	HeadRight: 'O',
	Body:      'o',
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.paused = false

	diff, err := g.settings.Difficulty(cfg.Difficulty)
	if err != nil {
		diff, _ = g.settings.Difficulty("")
	}
	g.difficulty = diff

	g.skin = classicSkin
	if g.edition == EditionGotham {
		if ch, err := g.settings.Character(cfg.Character); err == nil {
			g.skin = ch.Skin()
		} else if ch, err := g.settings.Character(""); err == nil {
			g.skin = ch.Skin()
		}
	}

	g.session = NewSession(SessionConfig{
		Grid:            Grid{Cols: g.settings.Grid.Cols, Rows: g.settings.Grid.Rows},
		StartLength:     g.settings.StartLength,
		BaseFPS:         diff.FPS,
		PowerUpDelay:    diff.PowerUpDelay,
		PowerUpLifetime: g.settings.PowerUpLifetime,
		PowerUps:        g.edition == EditionGotham,
		HighScoreKey:    string(g.edition),
	}, g.rng, g.scores)

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h

	boardW, boardH := g.boardSize()
	g.tooSmall = w < boardW || h < boardH+hudHeight
	g.boardX = max(0, (w-boardW)/2)
	g.boardY = hudHeight
}

// boardSize returns the framed board size in terminal cells.
func (g *Game) boardSize() (w, h int) {
	grid := g.session.Config().Grid
	return grid.Cols*cellWidth + 2, grid.Rows + 2
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	over := g.session.GameOver()

	// Restart keeps the selections and draws a new seed
	if over && (input.Has(core.ActionRestart) || input.Has(core.ActionConfirm)) {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}

	if over || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if d, ok := directionFor(input.Direction()); ok {
		g.session.SetDirection(d)
	}

	events := g.session.Tick()
	return core.StepResult{State: g.State(), Events: events}
}

// TickRate returns the session's effective rate.
func (g *Game) TickRate() int {
	return g.session.EffectiveTickRate()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Length:    g.session.Len(),
		GameOver:  g.session.GameOver(),
		Paused:    g.paused || g.tooSmall,
	}
}

// RunInfo describes the current run for the history table.
func (g *Game) RunInfo() registry.RunInfo {
	return registry.RunInfo{
		Difficulty: g.difficulty.Name,
		Character:  g.skin.Name,
		Ticks:      g.session.Ticks(),
	}
}
