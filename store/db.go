package store

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens (or creates) the SQLite database at path and makes sure the
// schema exists. The returned handle is meant to be constructed once in
// main and passed to whoever needs it.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func createTables(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			user_id VARCHAR(255) PRIMARY KEY,
			user_name VARCHAR(255) NOT NULL,
			user_email VARCHAR(255) UNIQUE,
			created_timestamp TIMESTAMP DEFAULT (datetime('now', 'localtime')),
			updated_timestamp TIMESTAMP DEFAULT (datetime('now', 'localtime'))
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			product_id VARCHAR(255) PRIMARY KEY,
			product_title VARCHAR(255) NOT NULL,
			product_price INTEGER NOT NULL,
			product_description TEXT,
			product_image VARCHAR(500),
			product_category VARCHAR(255),
			created_timestamp TIMESTAMP DEFAULT (datetime('now', 'localtime')),
			updated_timestamp TIMESTAMP DEFAULT (datetime('now', 'localtime'))
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
