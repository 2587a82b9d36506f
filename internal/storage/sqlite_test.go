package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenEmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("Open(\"\") should fail")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveRun(Run{Edition: "gotham", Difficulty: "Rookie", Hero: "Batman", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(Run{Edition: "classic", Score: 500}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("gotham", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if runs[i].Score != want {
			t.Errorf("runs[%d].Score = %d, expected %d", i, runs[i].Score, want)
		}
	}
	if runs[0].Hero != "Batman" || runs[0].Difficulty != "Rookie" {
		t.Errorf("run selections not stored: %+v", runs[0])
	}

	classic, err := store.TopRuns("classic", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic run, got %d", len(classic))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Edition: "gotham", Score: 7, Length: 12, Ticks: 340})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("generated ID %q is not a UUID", id)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if run.Score != 7 || run.Length != 12 || run.Ticks != 340 {
		t.Errorf("RunByID() = %+v", run)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("RunByID(missing) = %v, %v; expected nil, nil", missing, err)
	}

	if _, err := store.SaveRun(Run{ID: id, Edition: "gotham"}); err == nil {
		t.Error("duplicate ID should fail")
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Edition: "gotham", Score: (i + 1) * 100})
	}

	runs, err := store.TopRuns("gotham", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 4; i++ {
		store.SaveRun(Run{Edition: "classic", Score: i})
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Score != 4 || runs[1].Score != 3 {
		t.Errorf("Expected newest first, got %d, %d", runs[0].Score, runs[1].Score)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("gotham")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty edition, got %d", best)
	}

	store.SaveRun(Run{Edition: "gotham", Score: 100})
	store.SaveRun(Run{Edition: "gotham", Score: 300})
	store.SaveRun(Run{Edition: "gotham", Score: 200})

	best, err = store.BestRun("gotham")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != 300 {
		t.Errorf("Expected best run of 300, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Edition: "gotham", Score: 100})
	store.SaveRun(Run{Edition: "gotham", Score: 200})
	store.SaveRun(Run{Edition: "classic", Score: 300})

	if err := store.ClearRuns("gotham"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	gotham, _ := store.TopRuns("gotham", 10)
	if len(gotham) != 0 {
		t.Errorf("Expected 0 gotham runs after clear, got %d", len(gotham))
	}
	classic, _ := store.TopRuns("classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic runs should not be affected by clearing gotham")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Edition: "gotham", Score: 10, Length: 14})
	store.SaveRun(Run{Edition: "gotham", Score: 20, Length: 9})
	store.SaveRun(Run{Edition: "classic", Score: 5, Length: 8})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	g := stats["gotham"]
	if g == nil {
		t.Fatal("missing gotham stats")
	}
	if g.RunsCount != 2 || g.BestScore != 20 || g.AvgScore != 15 || g.LongestLen != 14 {
		t.Errorf("gotham stats = %+v", g)
	}
	if stats["classic"] == nil || stats["classic"].RunsCount != 1 {
		t.Errorf("classic stats = %+v", stats["classic"])
	}
}

func TestStoreHighScoreTable(t *testing.T) {
	store := openTestStore(t)
	table := store.HighScores(nil)

	if got := table.Read("gotham"); got != 0 {
		t.Errorf("Read() on empty table = %d, expected 0", got)
	}

	table.Write("gotham", 50)
	if got := table.Read("gotham"); got != 50 {
		t.Errorf("Read() = %d, expected 50", got)
	}

	table.Write("gotham", 75)
	if got := table.Read("gotham"); got != 75 {
		t.Errorf("Read() after overwrite = %d, expected 75", got)
	}
	if got := table.Read("classic"); got != 0 {
		t.Errorf("keys should be independent, got %d", got)
	}

	table.Write("gotham", 20)
	if got := table.Read("gotham"); got != 75 {
		t.Errorf("Read() after lower write = %d, expected 75", got)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
