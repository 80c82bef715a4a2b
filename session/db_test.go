package session

import (
	"path/filepath"
	"testing"

	"github.com/Nagendra14319/book1432/api"
)

func tempDB(t *testing.T) *db {
	t.Helper()
	dir := t.TempDir()
	d, err := openDB(filepath.Join(dir, "session.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { d.close() })
	return d
}

func TestLoadEmpty(t *testing.T) {
	d := tempDB(t)
	user, token, err := d.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if user != nil || token != "" {
		t.Fatalf("expected empty session, got %+v / %q", user, token)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	d := tempDB(t)
	in := &api.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	if err := d.save(in, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}

	user, token, err := d.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-1" {
		t.Fatalf("want token tok-1, got %q", token)
	}
	if user.ID != "u1" || user.Username != "alice" || user.Email != "alice@example.com" {
		t.Fatalf("user mismatch: %+v", user)
	}
}

func TestSaveReplacesPreviousSession(t *testing.T) {
	d := tempDB(t)
	if err := d.save(&api.User{ID: "u1", Username: "alice"}, "tok-1"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := d.save(&api.User{ID: "u2", Username: "bob"}, "tok-2"); err != nil {
		t.Fatalf("save second: %v", err)
	}

	user, token, _ := d.load()
	if user.ID != "u2" || token != "tok-2" {
		t.Fatalf("expected replacement, got %+v / %q", user, token)
	}
}

func TestClear(t *testing.T) {
	d := tempDB(t)
	if err := d.save(&api.User{ID: "u1"}, "tok"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := d.clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	user, token, err := d.load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if user != nil || token != "" {
		t.Fatalf("session should be gone")
	}

	// Clearing an already-empty table is not an error.
	if err := d.clear(); err != nil {
		t.Fatalf("clear empty: %v", err)
	}
}
