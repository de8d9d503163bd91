package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("chase", "classic", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	// A different game's scores must not leak in.
	if _, err := store.SaveScore("other", "classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending.
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].MapID != "classic" {
		t.Errorf("Map ID should round-trip, got %q", scores[0].MapID)
	}
}

func TestStoreTopScoresForMap(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", "classic", 100)
	store.SaveScore("chase", "classic", 300)
	store.SaveScore("chase", "compact", 900)

	scores, err := store.TopScoresForMap("chase", "classic", 10)
	if err != nil {
		t.Fatalf("TopScoresForMap() failed: %v", err)
	}

	if len(scores) != 2 {
		t.Fatalf("Expected 2 classic scores, got %d", len(scores))
	}
	if scores[0].Score != 300 {
		t.Errorf("Expected top classic score 300, got %d", scores[0].Score)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("chase", "classic", (i+1)*100)
	}

	scores, err := store.TopScores("chase", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("chase", "classic", 100)
	store.SaveScore("chase", "compact", 300)
	store.SaveScore("chase", "classic", 200)

	high, err = store.HighScore("chase")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", "classic", 100)
	store.SaveScore("chase", "compact", 200)
	store.SaveScore("other", "classic", 300)

	if err := store.ClearScores("chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	chaseScores, _ := store.TopScores("chase", 10)
	if len(chaseScores) != 0 {
		t.Errorf("Expected 0 chase scores after clear, got %d", len(chaseScores))
	}

	otherScores, _ := store.TopScores("other", 10)
	if len(otherScores) != 1 {
		t.Error("Other games' scores should not be affected by the clear")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("chase", "classic", i*10)
	}

	scores, err := store.AllScores("chase")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("chase", "classic", 100)
	store.SaveScore("chase", "classic", 300)

	stats, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
