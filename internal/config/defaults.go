package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in settings, used when even the embedded
// YAML cannot be parsed.
func Default() Settings {
	return Settings{
		Grid:             GridConfig{Cols: 24, Rows: 24},
		StartLength:      3,
		PowerUpLifetime:  6,
		DefaultCharacter: "Batman",
		Difficulties: []Difficulty{
			{Name: "Standard", FPS: 12, PowerUpDelay: 8, Description: "Default pace."},
		},
		Characters: []Character{defaultCharacter()},
		Storage: StorageConfig{
			HighScoreBackend: BackendFile,
			HighScoreDir:     "~/.batsnake",
			HistoryDB:        "~/.batsnake/runs.db",
		},
	}
}

func defaultCharacter() Character {
	return Character{
		Name:        "Batman",
		Description: "The caped crusader.",
		Color:       "bright_yellow",
		Head:        HeadGlyphs{Up: "^", Down: "v", Left: "<", Right: ">"},
		Body:        "#",
	}
}

// withDefaults fills zero fields of s from base. Lists are only inherited
// when s has none at all; entries inside a list are merged one by one.
func (s Settings) withDefaults(base Settings) Settings {
	if s.Grid.Cols == 0 {
		s.Grid.Cols = base.Grid.Cols
	}
	if s.Grid.Rows == 0 {
		s.Grid.Rows = base.Grid.Rows
	}
	if s.StartLength == 0 {
		s.StartLength = base.StartLength
	}
	if s.PowerUpLifetime == 0 {
		s.PowerUpLifetime = base.PowerUpLifetime
	}
	if s.DefaultCharacter == "" {
		s.DefaultCharacter = base.DefaultCharacter
	}
	if s.Storage.HighScoreBackend == "" {
		s.Storage.HighScoreBackend = base.Storage.HighScoreBackend
	}
	if s.Storage.HighScoreDir == "" {
		s.Storage.HighScoreDir = base.Storage.HighScoreDir
	}
	if s.Storage.HistoryDB == "" {
		s.Storage.HistoryDB = base.Storage.HistoryDB
	}

	if len(s.Difficulties) == 0 {
		s.Difficulties = append([]Difficulty(nil), base.Difficulties...)
	}
	baseDiff := Difficulty{FPS: 12, PowerUpDelay: 8}
	for i := range s.Difficulties {
		s.Difficulties[i] = s.Difficulties[i].withDefaults(baseDiff)
	}

	if len(s.Characters) == 0 {
		s.Characters = append([]Character(nil), base.Characters...)
	}
	baseChar := defaultCharacter()
	for i := range s.Characters {
		s.Characters[i] = s.Characters[i].withDefaults(baseChar)
	}
	return s
}

func (d Difficulty) withDefaults(base Difficulty) Difficulty {
	if d.FPS == 0 {
		d.FPS = base.FPS
	}
	if d.PowerUpDelay == 0 {
		d.PowerUpDelay = base.PowerUpDelay
	}
	return d
}

func (c Character) withDefaults(base Character) Character {
	if c.Color == "" {
		c.Color = base.Color
	}
	if c.Head.Up == "" {
		c.Head.Up = base.Head.Up
	}
	if c.Head.Down == "" {
		c.Head.Down = base.Head.Down
	}
	if c.Head.Left == "" {
		c.Head.Left = base.Head.Left
	}
	if c.Head.Right == "" {
		c.Head.Right = base.Head.Right
	}
	if c.Body == "" {
		c.Body = base.Body
	}
	return c
}
