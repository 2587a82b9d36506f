package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/registry"
)

// Selection is what the player picked in the menu.
type Selection struct {
	Edition    string
	Difficulty string
	Character  string
}

// MenuModel is the Bubble Tea model for the start menu: edition,
// difficulty and hero.
type MenuModel struct {
	settings   config.Settings
	editions   []registry.GameInfo
	edition    int
	difficulty int
	hero       int
	width      int
	height     int
	keyMapper  *KeyMapper

	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates a menu with cursors placed on sel.
func NewMenuModel(settings config.Settings, sel Selection, width, height int) MenuModel {
	m := MenuModel{
		settings:  settings,
		editions:  registry.List(),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}

	// Gotham first when present
	for i, e := range m.editions {
		if e.ID == "gotham" {
			m.edition = i
		}
	}
	for i, e := range m.editions {
		if e.ID == sel.Edition {
			m.edition = i
		}
	}
	m.difficulty = max(0, settings.DifficultyIndex(sel.Difficulty))
	if sel.Character == "" {
		m.hero = max(0, settings.CharacterIndex(settings.DefaultCharacter))
	} else {
		m.hero = max(0, settings.CharacterIndex(sel.Character))
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	diffCount := len(m.settings.Difficulties)
	heroCount := len(m.settings.Characters)

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true

	case MenuActionUp:
		if diffCount > 0 {
			m.difficulty = core.Mod(m.difficulty-1, diffCount)
		}

	case MenuActionDown:
		if diffCount > 0 {
			m.difficulty = core.Mod(m.difficulty+1, diffCount)
		}

	case MenuActionLeft:
		if heroCount > 0 && m.heroesEnabled() {
			m.hero = core.Mod(m.hero-1, heroCount)
		}

	case MenuActionRight:
		if heroCount > 0 && m.heroesEnabled() {
			m.hero = core.Mod(m.hero+1, heroCount)
		}

	case MenuActionEdition:
		if len(m.editions) > 0 {
			m.edition = (m.edition + 1) % len(m.editions)
		}

	case MenuActionSelect:
		if len(m.editions) > 0 {
			m.selected = true
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
	}

	return m, nil
}

// heroesEnabled reports whether the current edition uses heroes.
func (m MenuModel) heroesEnabled() bool {
	return len(m.editions) > 0 && m.editions[m.edition].ID != "classic"
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B A T S N A K E"), m.width))
	b.WriteString("\n")
	if len(m.editions) > 0 {
		b.WriteString(centerText(dimStyle.Render(m.editions[m.edition].Title+"  (Tab to switch)"), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(headingStyle.Render("Difficulty"), m.width))
	b.WriteString("\n")
	for i, d := range m.settings.Difficulties {
		line := fmt.Sprintf("  %-12s %2d fps  ", d.Name, d.FPS)
		if i == m.difficulty {
			line = activeStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	if d := m.currentDifficulty(); d.Description != "" {
		b.WriteString(centerText(dimStyle.Render(d.Description), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.heroesEnabled() && len(m.settings.Characters) > 0 {
		ch := m.settings.Characters[m.hero]
		skin := ch.Skin()
		preview := colorStyle(skin.Color).Render(strings.Repeat(string(skin.Body), 6) + string(skin.HeadRight))

		b.WriteString(centerText(headingStyle.Render("Hero"), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("<  %s  >", ch.Name), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(preview, m.width))
		b.WriteString("\n")
		if ch.Description != "" {
			b.WriteString(centerText(dimStyle.Render(ch.Description), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	controls := "Up/Down: Difficulty  |  Left/Right: Hero  |  Enter: Start  |  H: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return lipgloss.NewStyle().MaxWidth(max(1, m.width)).Render(b.String())
}

func (m MenuModel) currentDifficulty() config.Difficulty {
	if m.difficulty < len(m.settings.Difficulties) {
		return m.settings.Difficulties[m.difficulty]
	}
	return config.Difficulty{}
}

// Selection returns the current cursor positions as a selection.
func (m MenuModel) Selection() Selection {
	var sel Selection
	if len(m.editions) > 0 {
		sel.Edition = m.editions[m.edition].ID
	}
	sel.Difficulty = m.currentDifficulty().Name
	if m.hero < len(m.settings.Characters) {
		sel.Character = m.settings.Characters[m.hero].Name
	}
	return sel
}

// Selected returns true once the player started a game.
func (m MenuModel) Selected() bool {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}
