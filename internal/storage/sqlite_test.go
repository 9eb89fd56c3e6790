package storage

import (
	"os"
	"path/filepath"
	"strings"
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
	dbPath := filepath.Join(t.TempDir(), "test.db")

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
		if _, err := store.SaveScore("clipper", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("clipper_platformer", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("clipper", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	other, err := store.TopScores("clipper_platformer", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 platformer score, got %d", len(other))
	}
}

func TestStoreSaveRunKeepsStats(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{GameID: "clipper_platformer", Score: 325, Stomps: 3, Coins: 4, Ticks: 3600}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("Expected positive row id, got %d", id)
	}

	scores, err := store.TopScores("clipper_platformer", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	got := scores[0]
	if got.Score != 325 || got.Stomps != 3 || got.Coins != 4 || got.Ticks != 3600 {
		t.Errorf("Run stats not round-tripped: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreSaveRunRejectsEmptyGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{Score: 10}); err == nil {
		t.Error("Expected error for empty game id")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("clipper", (i+1)*100)
	}

	scores, err := store.TopScores("clipper", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limits fall back to 10
	all, _ := store.TopScores("clipper", 0)
	if len(all) != 5 {
		t.Errorf("Expected default limit to return all 5, got %d", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("clipper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("clipper", 100)
	store.SaveScore("clipper", 300)
	store.SaveScore("clipper", 200)

	high, err = store.HighScore("clipper")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("clipper", 100)
	store.SaveScore("clipper", 200)
	store.SaveScore("clipper_platformer", 300)

	if err := store.ClearScores("clipper"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	runner, _ := store.TopScores("clipper", 10)
	if len(runner) != 0 {
		t.Errorf("Expected 0 runner scores after clear, got %d", len(runner))
	}
	platformer, _ := store.TopScores("clipper_platformer", 10)
	if len(platformer) != 1 {
		t.Error("Platformer scores should not be affected by clearing the runner")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("clipper", i*10)
	}

	scores, err := store.AllScores("clipper")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("clipper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected zero stats for unplayed game, got %+v", empty)
	}

	store.SaveRun(RunRecord{GameID: "clipper", Score: 100, Stomps: 1, Coins: 0, Ticks: 600})
	store.SaveRun(RunRecord{GameID: "clipper", Score: 300, Stomps: 2, Coins: 5, Ticks: 900})

	stats, err := store.GetGameStats("clipper")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("Unexpected aggregate: %+v", stats)
	}
	if stats.TotalStomps != 3 || stats.TotalCoins != 5 || stats.TotalTicks != 1500 {
		t.Errorf("Unexpected totals: %+v", stats)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestExpandPath(t *testing.T) {
	plain, err := ExpandPath("/tmp/x.db")
	if err != nil || plain != "/tmp/x.db" {
		t.Errorf("ExpandPath() changed an absolute path: %q, %v", plain, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	expanded, err := ExpandPath("~/.clipper/scores.db")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if !strings.HasPrefix(expanded, home) || !strings.HasSuffix(expanded, filepath.Join(".clipper", "scores.db")) {
		t.Errorf("ExpandPath() = %q, expected under %q", expanded, home)
	}
}
