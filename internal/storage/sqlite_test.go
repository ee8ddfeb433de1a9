package storage

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/highscore"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, dbPath
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestPrefsUpsert(t *testing.T) {
	store, _ := openTemp(t)

	if _, ok, err := store.GetInt("flappy", "Highscore"); err != nil || ok {
		t.Fatalf("GetInt() on empty table = ok %v err %v, expected missing", ok, err)
	}

	if err := store.PutInt("flappy", "Highscore", 4); err != nil {
		t.Fatalf("PutInt() failed: %v", err)
	}
	if err := store.PutInt("flappy", "Highscore", 9); err != nil {
		t.Fatalf("PutInt() failed: %v", err)
	}

	v, ok, err := store.GetInt("flappy", "Highscore")
	if err != nil || !ok || v != 9 {
		t.Errorf("GetInt() = %d, %v, %v, expected 9, true, nil", v, ok, err)
	}

	if _, ok, _ := store.GetInt("steampunk", "Highscore"); ok {
		t.Error("Prefs should be scoped by game")
	}
}

func TestPrefsSurviveReopen(t *testing.T) {
	store, dbPath := openTemp(t)

	hs := highscore.New(store, "flappy", highscore.DefaultKey, log.New(io.Discard))
	hs.SetIfGreater(12)
	hs.SetIfGreater(3)
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	hs = highscore.New(reopened, "flappy", highscore.DefaultKey, log.New(io.Discard))
	if hs.Get() != 12 {
		t.Errorf("Highscore after reopen = %d, expected 12", hs.Get())
	}
}

func TestDeletePref(t *testing.T) {
	store, _ := openTemp(t)

	store.PutInt("flappy", "Highscore", 7) //nolint:errcheck
	if err := store.DeletePref("flappy", "Highscore"); err != nil {
		t.Fatalf("DeletePref() failed: %v", err)
	}
	if _, ok, _ := store.GetInt("flappy", "Highscore"); ok {
		t.Error("Pref should be gone after DeletePref")
	}

	// Deleting again is fine
	if err := store.DeletePref("flappy", "Highscore"); err != nil {
		t.Errorf("DeletePref() on missing record failed: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store, _ := openTemp(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("steampunk", 500) //nolint:errcheck

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	recent, err := store.RecentScores("flappy", 2)
	if err != nil {
		t.Fatalf("RecentScores() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Score != 200 || recent[1].Score != 50 {
		t.Errorf("RecentScores() = %v, expected [200 50]", recent)
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store, _ := openTemp(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("flappy", 100)   //nolint:errcheck
	store.SaveScore("flappy", 300)   //nolint:errcheck
	store.SaveScore("steampunk", 50) //nolint:errcheck

	if high, _ = store.HighScore("flappy"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	if err := store.ClearScores("flappy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if left, _ := store.TopScores("flappy", 10); len(left) != 0 {
		t.Errorf("Expected 0 flappy scores after clear, got %d", len(left))
	}
	if other, _ := store.TopScores("steampunk", 10); len(other) != 1 {
		t.Error("Steampunk scores should not be affected by clearing flappy")
	}
}
