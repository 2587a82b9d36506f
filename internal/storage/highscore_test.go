package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/batsnake/internal/config"
	"github.com/vovakirdan/batsnake/internal/core"
)

func TestHighScoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")

	if err := WriteHighScore(path, 50); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}
	if got := ReadHighScore(path); got != 50 {
		t.Errorf("ReadHighScore() = %d, expected 50", got)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "50" {
		t.Errorf("file content = %q, expected plain integer", data)
	}
}

func TestReadHighScoreFallbacks(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"padded", " 42\n", 42},
		{"garbage", "batman", 0},
		{"empty", "", 0},
		{"negative", "-3", 0},
		{"plus", "+7", 0},
		{"mixed", "12b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if got := ReadHighScore(path); got != tt.want {
				t.Errorf("ReadHighScore() = %d, expected %d", got, tt.want)
			}
		})
	}

	if got := ReadHighScore(filepath.Join(dir, "missing")); got != 0 {
		t.Errorf("missing file = %d, expected 0", got)
	}
}

func TestWriteHighScoreCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "highscore.txt")
	if err := WriteHighScore(path, 9); err != nil {
		t.Fatalf("WriteHighScore() failed: %v", err)
	}
	if got := ReadHighScore(path); got != 9 {
		t.Errorf("ReadHighScore() = %d, expected 9", got)
	}
}

func TestFileStore(t *testing.T) {
	fs := NewFileStore(t.TempDir(), nil)

	fs.Write("gotham", 12)
	fs.Write("classic", 3)

	if got := fs.Read("gotham"); got != 12 {
		t.Errorf("Read(gotham) = %d, expected 12", got)
	}
	if got := fs.Read("classic"); got != 3 {
		t.Errorf("Read(classic) = %d, expected 3", got)
	}
	if filepath.Base(fs.Path("")) != "highscore.txt" {
		t.Errorf("Path(\"\") = %q", fs.Path(""))
	}
}

func TestNewHighScoreStore(t *testing.T) {
	dir := t.TempDir()

	fileCfg := config.StorageConfig{HighScoreBackend: config.BackendFile, HighScoreDir: dir}
	if _, ok := NewHighScoreStore(fileCfg, nil, nil).(*FileStore); !ok {
		t.Error("file backend should return a FileStore")
	}

	sqlCfg := config.StorageConfig{HighScoreBackend: config.BackendSQLite, HighScoreDir: dir}
	if _, ok := NewHighScoreStore(sqlCfg, nil, nil).(*FileStore); !ok {
		t.Error("sqlite backend without a database should fall back to files")
	}

	store := openTestStore(t)
	var scores core.HighScoreStore = NewHighScoreStore(sqlCfg, store, nil)
	if _, ok := scores.(*HighScoreTable); !ok {
		t.Error("sqlite backend should return the high score table")
	}
}

func TestFileStoreNeverLowers(t *testing.T) {
	fs := NewFileStore(t.TempDir(), nil)

	tests := []struct {
		write int
		want  int
	}{
		{3, 3},
		{1, 3},
		{3, 3},
		{8, 8},
		{0, 8},
	}
	for _, tt := range tests {
		fs.Write("gotham", tt.write)
		if got := fs.Read("gotham"); got != tt.want {
			t.Errorf("after Write(%d) Read() = %d, expected %d", tt.write, got, tt.want)
		}
	}
}

func TestFileStoreLogsFailedWrite(t *testing.T) {
	// A regular file where the directory should be makes every write fail
	blocker := filepath.Join(t.TempDir(), "scores")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	fs := NewFileStore(blocker, logger)

	fs.Write("gotham", 4)

	if fs.Read("gotham") != 0 {
		t.Error("nothing should be stored")
	}
	if !bytes.Contains(buf.Bytes(), []byte("high score not saved")) {
		t.Errorf("expected a debug entry, log = %q", buf.String())
	}
}
