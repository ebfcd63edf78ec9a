package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"codeberg.org/snonux/rhymerank/internal/family"
)

// Columns selects the optional columns a table carries. The basic table
// uses neither; per-type tables add syllables_after; the combined typed
// table adds both.
type Columns struct {
	Type      bool // leading "type" column
	Syllables bool // "syllables_after" column
}

func header(c Columns) []string {
	h := make([]string, 0, 8)
	if c.Type {
		h = append(h, "type")
	}
	h = append(h, "rhyme_unit")
	if c.Syllables {
		h = append(h, "syllables_after")
	}
	return append(h, "family_size", "representative", "rep_zipf", "spelling_variants", "all_words")
}

func record(r family.Row, c Columns) []string {
	rec := make([]string, 0, 8)
	if c.Type {
		rec = append(rec, r.Type.String())
	}
	rec = append(rec, string(r.Unit))
	if c.Syllables {
		rec = append(rec, strconv.Itoa(r.SyllablesAfter))
	}
	return append(rec,
		strconv.Itoa(r.FamilySize),
		r.Representative,
		strconv.FormatFloat(r.RepZipf, 'f', 2, 64),
		r.SpellingVariants,
		r.AllWords,
	)
}

// WriteTSV writes rows to path as a UTF-8, tab-separated table with a
// header row. Scores are fixed to two decimal places.
func WriteTSV(path string, rows []family.Row, cols Columns) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	w := csv.NewWriter(tmp)
	w.Comma = '\t'

	if err := w.Write(header(cols)); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := w.Write(record(r, cols)); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("finalize output: %w", err)
	}
	return nil
}
