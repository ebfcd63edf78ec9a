package wordfreq

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ImportList reads a frequency list and upserts its scores into the store
// under the given locale. Each line holds a word and its Zipf score
// separated by a tab (any run of whitespace is accepted); blank lines and
// lines starting with '#' are skipped. Words are lowercased on import.
// Returns the number of rows imported.
func (s *Store) ImportList(path, locale string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open frequency list: %w", err)
	}
	defer f.Close()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO frequencies (word, locale, zipf) VALUES (?, ?, ?)
		ON CONFLICT(word, locale) DO UPDATE SET zipf = excluded.zipf`)
	if err != nil {
		return 0, fmt.Errorf("prepare import: %w", err)
	}
	defer stmt.Close()

	imported := 0
	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return imported, fmt.Errorf("frequency list line %d: expected word and score, got %q", lineNo, line)
		}

		z, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return imported, fmt.Errorf("frequency list line %d: bad score %q: %w", lineNo, fields[1], err)
		}

		if _, err := stmt.Exec(strings.ToLower(fields[0]), locale, z); err != nil {
			return imported, fmt.Errorf("import %q: %w", fields[0], err)
		}
		imported++
	}
	if err := scanner.Err(); err != nil {
		return imported, fmt.Errorf("scan frequency list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return imported, fmt.Errorf("commit import: %w", err)
	}
	return imported, nil
}
