package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
)

// ReadHighScore reads a plain-text integer score file.
// Missing, unreadable or non-numeric files read as 0. Only decimal digits
// count as numeric, so signed values read as 0 too.
func ReadHighScore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	text := strings.TrimSpace(string(data))
	if text == "" || strings.TrimLeft(text, "0123456789") != "" {
		return 0
	}
	score, err := strconv.Atoi(text)
	if err != nil {
		return 0
	}
	return score
}

// WriteHighScore replaces the score file with the decimal score.
// The file is written beside the target and renamed into place, so readers
// never see a partial value.
func WriteHighScore(path string, score int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}

// FileStore keeps one score file per key inside Dir. Writes only ever
// raise the stored score, so sessions sharing a FileStore cannot lower a
// record set by another.
type FileStore struct {
	Dir    string
	Logger *log.Logger // Receives swallowed write errors, may be nil

	mu sync.Mutex
}

// NewFileStore creates a file store rooted at dir.
func NewFileStore(dir string, logger *log.Logger) *FileStore {
	return &FileStore{Dir: dir, Logger: logger}
}

// Path returns the score file for key.
func (f *FileStore) Path(key string) string {
	name := "highscore.txt"
	if key != "" {
		name = "highscore_" + key + ".txt"
	}
	return filepath.Join(config.ExpandPath(f.Dir), name)
}

// Read returns the stored score for key, or 0.
func (f *FileStore) Read(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return ReadHighScore(f.Path(key))
}

// Write stores score for key when it beats the stored one. Failures are
// logged at debug level and otherwise ignored.
func (f *FileStore) Write(key string, score int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(key)
	if score <= ReadHighScore(path) {
		return
	}
	if err := WriteHighScore(path, score); err != nil && f.Logger != nil {
		f.Logger.Debug("high score not saved", "key", key, "error", err)
	}
}

// NewHighScoreStore picks the configured backend. The sqlite backend needs
// an open history store; without one it falls back to files. logger may be
// nil.
func NewHighScoreStore(cfg config.StorageConfig, history *Store, logger *log.Logger) core.HighScoreStore {
	if cfg.HighScoreBackend == config.BackendSQLite && history != nil {
		return history.HighScores(logger)
	}
	return NewFileStore(cfg.HighScoreDir, logger)
}
