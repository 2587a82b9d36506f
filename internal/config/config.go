// Package config provides YAML-based settings loading for batsnake:
// grid geometry, difficulties, heroes and storage locations.
package config

import (
	"errors"

	"github.com/vovakirdan/batsnake/internal/core"
)

// Lookup and validation errors.
var (
	ErrInvalid           = errors.New("config: invalid settings")
	ErrUnknownDifficulty = errors.New("config: unknown difficulty")
	ErrUnknownCharacter  = errors.New("config: unknown character")
)

// MinTickRate is the slowest simulation rate a session may run at.
const MinTickRate = 4

// Settings contains all configuration for a batsnake installation.
// It is loaded once and passed by value; nothing mutates it afterwards.
type Settings struct {
	Grid             GridConfig    `yaml:"grid"`
	StartLength      int           `yaml:"start_length"`
	PowerUpLifetime  int           `yaml:"powerup_lifetime"` // Seconds
	DefaultCharacter string        `yaml:"default_character"`
	Difficulties     []Difficulty  `yaml:"difficulties"`
	Characters       []Character   `yaml:"characters"`
	Storage          StorageConfig `yaml:"storage"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Difficulty is a named pace: base tick rate and power-up cadence.
type Difficulty struct {
	Name         string `yaml:"name"`
	FPS          int    `yaml:"fps"`
	PowerUpDelay int    `yaml:"powerup_delay"` // Seconds between power-ups
	Description  string `yaml:"description"`
}

// Character is a cosmetic hero skin.
type Character struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Color       string     `yaml:"color"`
	Head        HeadGlyphs `yaml:"head"`
	Body        string     `yaml:"body"`
}

// HeadGlyphs holds one head glyph per heading.
type HeadGlyphs struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// StorageConfig locates persisted data.
type StorageConfig struct {
	HighScoreBackend string `yaml:"high_score_backend"` // "file" or "sqlite"
	HighScoreDir     string `yaml:"high_score_dir"`
	HistoryDB        string `yaml:"history_db"`
}

// High score backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Skin is a Character resolved to runes and a palette color.
type Skin struct {
	Name      string
	Color     core.Color
	HeadUp    rune
	HeadDown  rune
	HeadLeft  rune
	HeadRight rune
	Body      rune
}
