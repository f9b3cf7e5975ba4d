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

func TestStoreRecordAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	session := NewSessionID()

	for _, steps := range []int{40, 25, 31} {
		if _, err := store.RecordCompletion(Completion{
			SessionID:  session,
			LevelID:    "tower",
			LevelIndex: 0,
			Steps:      steps,
		}); err != nil {
			t.Fatalf("RecordCompletion() failed: %v", err)
		}
	}

	// Different level
	if _, err := store.RecordCompletion(Completion{SessionID: session, LevelID: "stack", LevelIndex: 1, Steps: 12}); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	top, err := store.TopCompletions("tower", 10)
	if err != nil {
		t.Fatalf("TopCompletions() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 completions, got %d", len(top))
	}

	// Fewest steps first
	if top[0].Steps != 25 || top[1].Steps != 31 || top[2].Steps != 40 {
		t.Errorf("Completions not in expected order: %v", top)
	}
	if top[0].SessionID != session {
		t.Errorf("SessionID = %q, want %q", top[0].SessionID, session)
	}

	stack, err := store.TopCompletions("stack", 10)
	if err != nil {
		t.Fatalf("TopCompletions() failed: %v", err)
	}
	if len(stack) != 1 || stack[0].LevelIndex != 1 {
		t.Errorf("Expected 1 stack completion at index 1, got %v", stack)
	}
}

func TestStoreTopCompletionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.RecordCompletion(Completion{LevelID: "test", Steps: (i + 1) * 10})
	}

	top, err := store.TopCompletions("test", 3)
	if err != nil {
		t.Fatalf("TopCompletions() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 completions with limit, got %d", len(top))
	}
	if top[0].Steps != 10 || top[1].Steps != 20 || top[2].Steps != 30 {
		t.Errorf("Completions not in expected order: %v", top)
	}
}

func TestStoreRecordGeneratesSessionID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordCompletion(Completion{LevelID: "tower", Steps: 9}); err != nil {
		t.Fatalf("RecordCompletion() failed: %v", err)
	}

	top, _ := store.TopCompletions("tower", 1)
	if len(top) != 1 || top[0].SessionID == "" {
		t.Errorf("Expected generated session ID, got %v", top)
	}
}

func TestStoreRecordRequiresLevel(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.RecordCompletion(Completion{Steps: 3}); err == nil {
		t.Error("RecordCompletion() without level id should fail")
	}
}

func TestStoreBestSteps(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestSteps("tower")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if ok {
		t.Error("Expected no best for an uncleared level")
	}

	store.RecordCompletion(Completion{LevelID: "tower", Steps: 30})
	store.RecordCompletion(Completion{LevelID: "tower", Steps: 18})
	store.RecordCompletion(Completion{LevelID: "tower", Steps: 22})

	best, ok, err := store.BestSteps("tower")
	if err != nil {
		t.Fatalf("BestSteps() failed: %v", err)
	}
	if !ok || best != 18 {
		t.Errorf("BestSteps() = (%d, %v), want (18, true)", best, ok)
	}
}

func TestStoreClearCompletions(t *testing.T) {
	store := openTestStore(t)

	store.RecordCompletion(Completion{LevelID: "tower", Steps: 10})
	store.RecordCompletion(Completion{LevelID: "tower", Steps: 20})
	store.RecordCompletion(Completion{LevelID: "stack", Steps: 30})

	if err := store.ClearCompletions("tower"); err != nil {
		t.Fatalf("ClearCompletions() failed: %v", err)
	}

	tower, _ := store.TopCompletions("tower", 10)
	if len(tower) != 0 {
		t.Errorf("Expected 0 tower completions after clear, got %d", len(tower))
	}

	stack, _ := store.TopCompletions("stack", 10)
	if len(stack) != 1 {
		t.Errorf("Stack completions should not be affected by clearing tower")
	}
}

func TestStoreSessionCompletions(t *testing.T) {
	store := openTestStore(t)
	a, b := NewSessionID(), NewSessionID()

	store.RecordCompletion(Completion{SessionID: a, LevelID: "tower", Steps: 10})
	store.RecordCompletion(Completion{SessionID: b, LevelID: "tower", Steps: 11})
	store.RecordCompletion(Completion{SessionID: a, LevelID: "stack", Steps: 12})

	got, err := store.SessionCompletions(a)
	if err != nil {
		t.Fatalf("SessionCompletions() failed: %v", err)
	}
	if len(got) != 2 || got[0].LevelID != "tower" || got[1].LevelID != "stack" {
		t.Errorf("SessionCompletions() = %v, want tower then stack", got)
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("tower")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Clears != 0 || empty.BestSteps != 0 {
		t.Errorf("Expected zero stats, got %+v", empty)
	}

	store.RecordCompletion(Completion{LevelID: "tower", Steps: 10})
	store.RecordCompletion(Completion{LevelID: "tower", Steps: 20})
	store.RecordCompletion(Completion{LevelID: "stack", Steps: 5})

	stats, err := store.LevelStats("tower")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Clears != 2 || stats.BestSteps != 10 || stats.AvgSteps != 15 {
		t.Errorf("LevelStats() = %+v, want 2 clears, best 10, avg 15", stats)
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["stack"].BestSteps != 5 {
		t.Errorf("AllLevelStats() = %v, want 2 levels with stack best 5", all)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
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

func TestNewSessionIDUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Error("NewSessionID() returned duplicates")
	}
}
