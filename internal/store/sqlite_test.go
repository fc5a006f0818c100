package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := openTestStore(t)

	if err := s.Register("alice", "hunter2"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}

	if err := s.Authenticate("alice", "hunter2"); err != nil {
		t.Errorf("Authenticate with correct password failed: %v", err)
	}
	if err := s.Authenticate("alice", "wrong"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Authenticate with wrong password = %v, expected ErrBadCredentials", err)
	}
	if err := s.Authenticate("nobody", "hunter2"); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("Authenticate with unknown user = %v, expected ErrBadCredentials", err)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	s := openTestStore(t)

	if err := s.Register("alice", "pw"); err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if err := s.Register("alice", "other"); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate Register = %v, expected ErrUserExists", err)
	}
}

func TestRegisterRejectsEmpty(t *testing.T) {
	s := openTestStore(t)

	if err := s.Register("", "pw"); err == nil {
		t.Error("Register with empty username should fail")
	}
	if err := s.Register("bob", ""); err == nil {
		t.Error("Register with empty password should fail")
	}
}

func TestAddScoreAndHistory(t *testing.T) {
	s := openTestStore(t)
	if err := s.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}

	for _, sc := range []int{10, 50, 30} {
		if err := s.AddScore("alice", sc); err != nil {
			t.Fatalf("AddScore(%d) failed: %v", sc, err)
		}
	}

	scores, err := s.Scores("alice")
	if err != nil {
		t.Fatalf("Scores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, expected 3", len(scores))
	}
	// Most recent first.
	want := []int{30, 50, 10}
	for i, e := range scores {
		if e.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, e.Score, want[i])
		}
	}

	high, err := s.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 50 {
		t.Errorf("HighScore = %d, expected 50", high)
	}
}

func TestScoreHistoryCapped(t *testing.T) {
	s := openTestStore(t)
	if err := s.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < historyCap+10; i++ {
		if err := s.AddScore("alice", i); err != nil {
			t.Fatalf("AddScore failed: %v", err)
		}
	}

	scores, err := s.Scores("alice")
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != historyCap {
		t.Errorf("history length = %d, expected capped at %d", len(scores), historyCap)
	}
	// The newest entry survives the prune.
	if scores[0].Score != historyCap+9 {
		t.Errorf("newest score = %d, expected %d", scores[0].Score, historyCap+9)
	}

	// The high score reflects only the retained window.
	high, err := s.HighScore("alice")
	if err != nil {
		t.Fatal(err)
	}
	if high != historyCap+9 {
		t.Errorf("HighScore = %d, expected %d", high, historyCap+9)
	}
}

func TestLoginHistory(t *testing.T) {
	s := openTestStore(t)
	if err := s.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < historyCap+5; i++ {
		if err := s.RecordLogin("alice"); err != nil {
			t.Fatalf("RecordLogin failed: %v", err)
		}
	}

	logins, err := s.Logins("alice")
	if err != nil {
		t.Fatalf("Logins() failed: %v", err)
	}
	if len(logins) != historyCap {
		t.Errorf("login history = %d entries, expected capped at %d", len(logins), historyCap)
	}
}

func TestUnknownUserErrors(t *testing.T) {
	s := openTestStore(t)

	if err := s.AddScore("ghost", 10); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("AddScore for unknown user = %v, expected ErrUserNotFound", err)
	}
	if err := s.RecordLogin("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("RecordLogin for unknown user = %v, expected ErrUserNotFound", err)
	}
	if _, err := s.Scores("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Scores for unknown user = %v, expected ErrUserNotFound", err)
	}
	if _, err := s.HighScore("ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("HighScore for unknown user = %v, expected ErrUserNotFound", err)
	}
}

func TestAddScoreRejectsNegative(t *testing.T) {
	s := openTestStore(t)
	if err := s.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := s.AddScore("alice", -1); err == nil {
		t.Error("AddScore with negative score should fail")
	}
}

func TestUsersAreIsolated(t *testing.T) {
	s := openTestStore(t)
	if err := s.Register("alice", "pw"); err != nil {
		t.Fatal(err)
	}
	if err := s.Register("bob", "pw"); err != nil {
		t.Fatal(err)
	}

	if err := s.AddScore("alice", 100); err != nil {
		t.Fatal(err)
	}
	if err := s.AddScore("bob", 200); err != nil {
		t.Fatal(err)
	}

	high, err := s.HighScore("alice")
	if err != nil {
		t.Fatal(err)
	}
	if high != 100 {
		t.Errorf("alice's high score = %d, expected 100 (bob's scores leaked)", high)
	}
}
