package colorstore

import (
	"testing"

	"github.com/viant/sqlite-color/engine"
)

// TestEnsureSchema verifies that EnsureSchema creates the colors table
// without error on a fresh in-memory database.
func TestEnsureSchema(t *testing.T) {
	db, err := engine.Open(":memory:")
	if err != nil {
		t.Fatalf("engine.Open(:memory:) failed: %v", err)
	}
	defer db.Close()

	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	// Idempotent on an existing schema.
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("EnsureSchema second run failed: %v", err)
	}

	// Sanity check: we can insert a row into colors.
	if _, err := db.Exec(`INSERT INTO colors(r, g, b, name) VALUES(255, 0, 0, 'Bright Red')`); err != nil {
		t.Fatalf("insert into colors failed: %v", err)
	}

	// The primary key enforces uniqueness of (r, g, b).
	if _, err := db.Exec(`INSERT INTO colors(r, g, b, name) VALUES(255, 0, 0, 'Duplicate')`); err == nil {
		t.Fatalf("duplicate key insert succeeded, want constraint error")
	}
}
