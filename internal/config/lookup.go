package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/batsnake/internal/core"
)

// Difficulty returns the difficulty with the given name (case-insensitive).
// An empty name selects the first configured difficulty.
func (s Settings) Difficulty(name string) (Difficulty, error) {
	if len(s.Difficulties) == 0 {
		return Difficulty{}, fmt.Errorf("%w: none configured", ErrUnknownDifficulty)
	}
	if name == "" {
		return s.Difficulties[0], nil
	}
	for _, d := range s.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, name)
}

// DifficultyIndex returns the position of the named difficulty, or 0.
func (s Settings) DifficultyIndex(name string) int {
	for i, d := range s.Difficulties {
		if strings.EqualFold(d.Name, name) {
			return i
		}
	}
	return 0
}

// Character returns the hero with the given name (case-insensitive).
// An empty name selects DefaultCharacter, or the first hero if that is
// not configured.
func (s Settings) Character(name string) (Character, error) {
	if len(s.Characters) == 0 {
		return Character{}, fmt.Errorf("%w: none configured", ErrUnknownCharacter)
	}
	if name == "" {
		name = s.DefaultCharacter
	}
	for _, c := range s.Characters {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	if name == s.DefaultCharacter {
		return s.Characters[0], nil
	}
	return Character{}, fmt.Errorf("%w: %q", ErrUnknownCharacter, name)
}

// CharacterIndex returns the position of the named hero, or the default
// hero's position.
func (s Settings) CharacterIndex(name string) int {
	if name == "" {
		name = s.DefaultCharacter
	}
	for i, c := range s.Characters {
		if strings.EqualFold(c.Name, name) {
			return i
		}
	}
	return 0
}

// DifficultyNames lists configured difficulty names in order.
func (s Settings) DifficultyNames() []string {
	names := make([]string, len(s.Difficulties))
	for i, d := range s.Difficulties {
		names[i] = d.Name
	}
	return names
}

// CharacterNames lists configured hero names in order.
func (s Settings) CharacterNames() []string {
	names := make([]string, len(s.Characters))
	for i, c := range s.Characters {
		names[i] = c.Name
	}
	return names
}

// Skin resolves the character into runes and a palette color. Glyphs that
// are not exactly one rune fall back to the built-in hero's glyphs.
func (c Character) Skin() Skin {
	fallback := defaultCharacter()
	color, ok := core.ParseColor(c.Color)
	if !ok {
		color, _ = core.ParseColor(fallback.Color)
	}
	return Skin{
		Name:      c.Name,
		Color:     color,
		HeadUp:    glyph(c.Head.Up, fallback.Head.Up),
		HeadDown:  glyph(c.Head.Down, fallback.Head.Down),
		HeadLeft:  glyph(c.Head.Left, fallback.Head.Left),
		HeadRight: glyph(c.Head.Right, fallback.Head.Right),
		Body:      glyph(c.Body, fallback.Body),
	}
}

func glyph(s, fallback string) rune {
	if utf8.RuneCountInString(s) != 1 {
		s = fallback
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Validate checks the settings for values the game cannot run with.
func (s Settings) Validate() error {
	if s.Grid.Cols < 4 || s.Grid.Rows < 4 {
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", ErrInvalid, s.Grid.Cols, s.Grid.Rows)
	}
	if s.StartLength < 1 || s.StartLength > s.Grid.Cols {
		return fmt.Errorf("%w: start_length must be in [1, %d], got %d", ErrInvalid, s.Grid.Cols, s.StartLength)
	}
	if s.PowerUpLifetime < 0 {
		return fmt.Errorf("%w: powerup_lifetime must not be negative", ErrInvalid)
	}
	if len(s.Difficulties) == 0 {
		return fmt.Errorf("%w: at least one difficulty is required", ErrInvalid)
	}
	seen := make(map[string]bool)
	for _, d := range s.Difficulties {
		key := strings.ToLower(d.Name)
		if d.Name == "" || seen[key] {
			return fmt.Errorf("%w: difficulty names must be unique and non-empty (%q)", ErrInvalid, d.Name)
		}
		seen[key] = true
		if d.FPS < MinTickRate {
			return fmt.Errorf("%w: difficulty %q fps must be at least %d", ErrInvalid, d.Name, MinTickRate)
		}
		if d.PowerUpDelay < 1 {
			return fmt.Errorf("%w: difficulty %q powerup_delay must be at least 1", ErrInvalid, d.Name)
		}
	}
	if len(s.Characters) == 0 {
		return fmt.Errorf("%w: at least one character is required", ErrInvalid)
	}
	seen = make(map[string]bool)
	for _, c := range s.Characters {
		key := strings.ToLower(c.Name)
		if c.Name == "" || seen[key] {
			return fmt.Errorf("%w: character names must be unique and non-empty (%q)", ErrInvalid, c.Name)
		}
		seen[key] = true
	}
	switch s.Storage.HighScoreBackend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("%w: unknown high_score_backend %q", ErrInvalid, s.Storage.HighScoreBackend)
	}
	return nil
}
