package store

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"users", "products"} {
		var count int
		if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&count); err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
		if count != 0 {
			t.Errorf("table %s should start empty, has %d rows", table, count)
		}
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := Seed(db); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	var first int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&first); err != nil {
		t.Fatalf("counting products: %v", err)
	}
	if first != len(sampleProducts) {
		t.Errorf("got %d seeded rows, want %d", first, len(sampleProducts))
	}

	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	var second int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&second); err != nil {
		t.Fatalf("counting products: %v", err)
	}
	if second != first {
		t.Errorf("seeding a non-empty table added rows: %d -> %d", first, second)
	}
}
