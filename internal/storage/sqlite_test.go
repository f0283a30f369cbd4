package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tumblesolve/internal/board"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndHistory(t *testing.T) {
	store := openTestStore(t)

	moves := []board.Point{{X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	id, err := store.SaveResult("spiral", true, moves, 42*time.Millisecond)
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id == 0 {
		t.Error("SaveResult() returned zero row ID")
	}
	if _, err := store.SaveResult("spiral", false, nil, 7*time.Millisecond); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult("other", true, moves, time.Millisecond); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	records, err := store.History("spiral", 10)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("History() returned %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].Solved {
		t.Error("Newest record should be the unsolved attempt")
	}
	if records[1].MoveCount != 3 {
		t.Errorf("MoveCount = %d, want 3", records[1].MoveCount)
	}
	if records[1].Duration != 42*time.Millisecond {
		t.Errorf("Duration = %v, want 42ms", records[1].Duration)
	}

	decoded, err := DecodeMoves(records[1].Moves)
	if err != nil {
		t.Fatalf("DecodeMoves() failed: %v", err)
	}
	if len(decoded) != 3 || decoded[0] != moves[0] {
		t.Errorf("DecodeMoves() = %v, want %v", decoded, moves)
	}
}

func TestRecent(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if _, err := store.SaveResult(id, true, nil, 0); err != nil {
			t.Fatalf("SaveResult(%s) failed: %v", id, err)
		}
	}

	records, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Recent(2) returned %d records", len(records))
	}
	if records[0].LevelID != "c" || records[1].LevelID != "b" {
		t.Errorf("Recent order = [%s %s], want [c b]", records[0].LevelID, records[1].LevelID)
	}
}

func TestHistoryLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.SaveResult("x", true, nil, 0); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	records, err := store.History("x", 3)
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("History limit not applied: got %d records", len(records))
	}
}

func TestEncodeDecodeMoves(t *testing.T) {
	moves := []board.Point{{X: 1, Y: 2}, {X: 0, Y: 0}, {X: 10, Y: 3}}
	encoded := EncodeMoves(moves)
	if encoded != "1,2;0,0;10,3" {
		t.Errorf("EncodeMoves() = %q", encoded)
	}

	decoded, err := DecodeMoves(encoded)
	if err != nil {
		t.Fatalf("DecodeMoves() failed: %v", err)
	}
	if len(decoded) != len(moves) {
		t.Fatalf("DecodeMoves() returned %d moves", len(decoded))
	}
	for i := range moves {
		if decoded[i] != moves[i] {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], moves[i])
		}
	}

	if got := EncodeMoves(nil); got != "" {
		t.Errorf("EncodeMoves(nil) = %q, want empty", got)
	}
	if decoded, err := DecodeMoves(""); err != nil || decoded != nil {
		t.Errorf("DecodeMoves(\"\") = %v, %v", decoded, err)
	}

	for _, bad := range []string{"1", "a,b", "1,2;x"} {
		if _, err := DecodeMoves(bad); err == nil {
			t.Errorf("DecodeMoves(%q) should fail", bad)
		}
	}
}
