package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
	_ "github.com/vovakirdan/batsnake/internal/games/snake"
)

func newTestSession(t *testing.T) (SessionModel, *core.MemoryHighScores) {
	t.Helper()
	scores := core.NewMemoryHighScores()
	m := NewSessionModel(Services{
		Settings: config.Embedded(),
		Scores:   scores,
	}, core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 7}, Selection{})
	return m, scores
}

func send(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestMenuSelection(t *testing.T) {
	m, _ := newTestSession(t)

	sel := m.menu.Selection()
	if sel.Edition != "gotham" || sel.Difficulty != "Rookie" || sel.Character != "Batman" {
		t.Fatalf("initial selection = %+v", sel)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	sel = m.menu.Selection()
	if sel.Difficulty != "Vigilante" || sel.Character != "Robin" {
		t.Errorf("selection after navigation = %+v", sel)
	}

	// Wraps around
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.menu.Selection().Difficulty; got != "Dark Knight" {
		t.Errorf("difficulty after wrap = %q, expected Dark Knight", got)
	}
}

func TestSessionStartsGame(t *testing.T) {
	m, _ := newTestSession(t)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.current != screenGame || m.gameModel == nil {
		t.Fatal("Enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	m, cmd = send(t, m, TickMsg{Gen: m.gen})
	if cmd == nil {
		t.Error("a live tick should schedule the next one")
	}

	// Ticks from an older chain are dropped
	_, cmd = send(t, m, TickMsg{Gen: m.gen - 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another")
	}
}

func TestSessionBackToMenu(t *testing.T) {
	m, _ := newTestSession(t)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	// Esc pauses first, the next Esc leaves
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, TickMsg{Gen: m.gen})
	if !m.gameModel.State().Paused {
		t.Fatal("Esc during play should pause")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.current != screenMenu {
		t.Fatal("expected to be back on the menu")
	}
	if got := m.menu.Selection().Difficulty; got != "Vigilante" {
		t.Errorf("menu should keep the last selection, got %q", got)
	}
}

func TestSessionScoreboard(t *testing.T) {
	m, scores := newTestSession(t)
	scores.Write("gotham", 33)
	scores.Write("classic", 33)

	m, _ = send(t, m, runeKey("h"))
	if m.current != screenScores {
		t.Fatal("H should open the scoreboard")
	}
	if m.scoreboard.highScore != 33 {
		t.Errorf("record = %d, expected 33", m.scoreboard.highScore)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.current != screenMenu {
		t.Error("Esc should return to the menu")
	}
}

func TestSessionSkipMenu(t *testing.T) {
	m, _ := newTestSession(t)
	m, err := m.StartGame(Selection{Edition: "classic", Difficulty: "Dark Knight"})
	if err != nil {
		t.Fatalf("StartGame: %v", err)
	}
	if m.current != screenGame {
		t.Fatal("expected game screen")
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}

	if _, err := m.StartGame(Selection{Edition: "nope"}); err == nil {
		t.Error("unknown edition should fail")
	}
}

func TestSessionQuit(t *testing.T) {
	m, _ := newTestSession(t)
	m, cmd := send(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q should quit from the menu")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}
