package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the settings file name looked up in the config directories.
const ConfigFile = "snake.yaml"

// Load loads batsnake settings.
// Search order: customPath -> ~/.batsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandPath(customPath))
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	return Embedded(), nil
}

// Embedded returns the settings shipped inside the binary.
func Embedded() Settings {
	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Parse decodes YAML settings, fills missing fields from Default and
// validates the result.
func Parse(data []byte) (Settings, error) {
	var cfg Settings
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Settings{}, err
	}
	cfg = cfg.withDefaults(Default())
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
// The path is returned unchanged if home is unavailable.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".batsnake", "configs", filename)
}
