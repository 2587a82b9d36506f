package core

// HighScoreStore persists a single best score per key.
// Implementations never fail loudly: Read returns 0 when nothing usable is
// stored and Write is best effort.
type HighScoreStore interface {
	Read(key string) int
	Write(key string, score int)
}

// MemoryHighScores is an in-process HighScoreStore, used when persistence
// is unavailable and in tests.
type MemoryHighScores struct {
	Scores map[string]int
	Writes int // Number of Write calls, for callers checking write-through
}

// NewMemoryHighScores creates an empty in-memory store.
func NewMemoryHighScores() *MemoryHighScores {
	return &MemoryHighScores{Scores: make(map[string]int)}
}

// Read returns the stored score or 0.
func (m *MemoryHighScores) Read(key string) int {
	return m.Scores[key]
}

// Write stores the score.
func (m *MemoryHighScores) Write(key string, score int) {
	if m.Scores == nil {
		m.Scores = make(map[string]int)
	}
	m.Scores[key] = score
	m.Writes++
}
