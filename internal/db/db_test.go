package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	var count int
	if err := d.QueryRow("SELECT COUNT(*) FROM kv_slots").Scan(&count); err != nil {
		t.Errorf("table kv_slots: %v", err)
	}
	if d.Path() != ":memory:" {
		t.Errorf("Path() = %q", d.Path())
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestOpenFileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookhaven.db")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO kv_slots (profile_id, key, value) VALUES ('p', 'k', 'v')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var v string
	if err := d.QueryRow(`SELECT value FROM kv_slots WHERE profile_id = 'p' AND key = 'k'`).Scan(&v); err != nil {
		t.Fatalf("select: %v", err)
	}
	if v != "v" {
		t.Errorf("value = %q, want v", v)
	}
}
