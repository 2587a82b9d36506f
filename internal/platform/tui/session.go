package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/registry"
	"github.com/vovakirdan/batsnake/internal/storage"
)

// Services are the long-lived dependencies shared by every session.
type Services struct {
	Settings config.Settings
	Scores   core.HighScoreStore // High score backend
	History  *storage.Store      // Run history, may be nil
	Logger   *log.Logger         // May be nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. It is the top-level model both
// locally and over SSH.
type SessionModel struct {
	services   Services
	config     core.RuntimeConfig
	logger     *log.Logger
	selection  Selection
	current    screen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	gen        int
	quitting   bool
}

// NewSessionModel creates a session that opens on the menu.
func NewSessionModel(services Services, cfg core.RuntimeConfig, sel Selection) SessionModel {
	logger := services.Logger
	if logger == nil {
		logger = discardLogger()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return SessionModel{
		services:  services,
		config:    cfg,
		logger:    logger,
		selection: sel,
		menu:      NewMenuModel(services.Settings, sel, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.current == screenGame && m.gameModel != nil {
		return m.gameModel.Init()
	}
	return m.menu.Init()
}

// StartGame switches straight into a game with the given selection,
// bypassing the menu.
func (m SessionModel) StartGame(sel Selection) (SessionModel, error) {
	return m.startGame(sel)
}

func (m SessionModel) startGame(sel Selection) (SessionModel, error) {
	game, err := registry.Create(sel.Edition, registry.Env{
		Settings: m.services.Settings,
		Scores:   m.services.Scores,
	})
	if err != nil {
		return m, err
	}

	m.selection = sel
	cfg := m.config
	cfg.Difficulty = sel.Difficulty
	cfg.Character = sel.Character
	if cfg.Seed != 0 {
		// A fixed seed still gives each game in the session its own run
		cfg.Seed += int64(m.gen)
	}

	m.gen++
	gm := NewGameModel(game, m.services.History, m.logger, cfg, m.gen)
	m.gameModel = &gm
	m.current = screenGame
	return m, nil
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		if m.gameModel != nil {
			return m.updateGame(msg)
		}
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.selection = m.menu.Selection()
		m.scoreboard = NewScoreboardModel(m.services.History, m.services.Scores, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scoreboard.Init()

	case m.menu.Selected():
		next, err := m.startGame(m.menu.Selection())
		if err != nil {
			m.logger.Error("could not start game", "error", err)
			m.menu = NewMenuModel(m.services.Settings, m.selection, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		return next, next.gameModel.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.gameModel = nil
	m.menu = NewMenuModel(m.services.Settings, m.selection, m.config.ScreenW, m.config.ScreenH)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenScores:
		return m.scoreboard.View()
	}
	return m.menu.View()
}

// RunOptions configures a local session.
type RunOptions struct {
	Selection Selection
	SkipMenu  bool // Start the game immediately with Selection
}

// Run starts a local Bubble Tea program for the session.
func Run(services Services, cfg core.RuntimeConfig, opts RunOptions) error {
	model := NewSessionModel(services, cfg, opts.Selection)
	if opts.SkipMenu {
		var err error
		if model, err = model.StartGame(opts.Selection); err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
