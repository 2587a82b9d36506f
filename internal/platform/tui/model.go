package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/registry"
	"github.com/vovakirdan/batsnake/internal/storage"
)

// GameModel is the Bubble Tea model that runs one edition until the
// player quits or returns to the menu.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	history    *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	gen        int // Tick chain generation
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewGameModel creates a game model. history and logger may be nil.
func NewGameModel(game registry.Game, history *storage.Store, logger *log.Logger, cfg core.RuntimeConfig, gen int) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = discardLogger()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		history:    history,
		logger:     logger.With("edition", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        gen,
	}
}

// Init starts the game and its tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started",
		"difficulty", m.config.Difficulty,
		"hero", m.config.Character,
		"seed", m.config.Seed,
	)
	return tickCmd(registry.TickRate(m.game, m.config.TickRate), m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers input for the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
	case action == core.ActionBack:
		// Esc during play pauses first
		m.inputFrame.Set(core.ActionPause)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	} else if !m.gameState.GameOver {
		m.runSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(registry.TickRate(m.game, m.config.TickRate), m.gen)
}

// logEvents writes game events to the session logger.
func (m GameModel) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Type {
		case core.EventFoodEaten:
			m.logger.Debug("food eaten", "tick", e.Tick, "score", e.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "tick", e.Tick, "score", e.Score, "length", m.gameState.Length)
		case core.EventNewHighScore:
			m.logger.Info("new high score", "score", e.Score)
		default:
			m.logger.Info(e.Type.String(), "tick", e.Tick, "score", e.Score, "powerup", e.Detail)
		}
	}
}

// saveRun records the finished run in the history database.
func (m GameModel) saveRun() {
	if m.history == nil || m.gameState.Score <= 0 {
		return
	}

	run := storage.Run{
		Edition: m.game.ID(),
		Score:   m.gameState.Score,
		Length:  m.gameState.Length,
	}
	if rep, ok := m.game.(registry.Reporter); ok {
		info := rep.RunInfo()
		run.Difficulty = info.Difficulty
		run.Hero = info.Character
		run.Ticks = int64(info.Ticks)
	}

	id, err := m.history.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", run.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".batsnake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
