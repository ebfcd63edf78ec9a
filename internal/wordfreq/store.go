package wordfreq

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS frequencies (
	word   TEXT NOT NULL,
	locale TEXT NOT NULL,
	zipf   REAL NOT NULL,
	PRIMARY KEY (word, locale)
)`

// Store is a SQLite-backed word-frequency lookup.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the frequency store at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open frequency store: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init frequency store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Zipf returns the Zipf score for a word in a locale. Unknown words score
// 0, which falls below any sensible cutoff.
func (s *Store) Zipf(word, locale string) (float64, error) {
	var z float64
	err := s.db.QueryRow(
		`SELECT zipf FROM frequencies WHERE word = ? AND locale = ?`,
		word, locale,
	).Scan(&z)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("zipf lookup: %w", err)
	}
	return z, nil
}

// LoadAll returns every score for a locale. The pipeline looks up each
// canonical word exactly once, so one scan beats ~100k point queries.
func (s *Store) LoadAll(locale string) (map[string]float64, error) {
	rows, err := s.db.Query(`SELECT word, zipf FROM frequencies WHERE locale = ?`, locale)
	if err != nil {
		return nil, fmt.Errorf("load frequencies: %w", err)
	}
	defer rows.Close()

	scores := make(map[string]float64)
	for rows.Next() {
		var word string
		var z float64
		if err := rows.Scan(&word, &z); err != nil {
			return nil, fmt.Errorf("scan frequency row: %w", err)
		}
		scores[word] = z
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load frequencies: %w", err)
	}
	return scores, nil
}

// Count reports how many scores the store holds for a locale.
func (s *Store) Count(locale string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM frequencies WHERE locale = ?`, locale).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count frequencies: %w", err)
	}
	return n, nil
}
