package cmudict

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// errSkipLine signals that a line should be skipped (comment, empty, etc.).
var errSkipLine = errors.New("skip line")

// Entry is one pronunciation of one word.
type Entry struct {
	Word     string   // canonical lowercase spelling, variant suffix stripped
	Variant  int      // 0 for the primary pronunciation, 1 for "(2)", 2 for "(3)", ...
	Phonemes []string // ARPAbet phonemes; vowels carry a stress digit
}

// Stats holds parser statistics for the run report.
type Stats struct {
	TotalLines   int
	CommentLines int
	ParsedLines  int
	UniqueWords  int
}

// ParseResult holds the parsed dictionary in source order.
type ParseResult struct {
	Entries []Entry
	Stats   Stats
}

// Parse reads a CMU dictionary file and returns every pronunciation entry
// in file order. Both the classic two-space separated format and the
// cmusphinx single-space format are accepted.
func Parse(filePath string) (ParseResult, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var result ParseResult
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		result.Stats.TotalLines++
		line := scanner.Text()

		entry, err := parseLine(line)
		if err == errSkipLine {
			if strings.HasPrefix(line, ";;;") {
				result.Stats.CommentLines++
			}
			continue
		}
		if err != nil {
			continue
		}

		result.Stats.ParsedLines++
		if !seen[entry.Word] {
			seen[entry.Word] = true
			result.Stats.UniqueWords++
		}
		result.Entries = append(result.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scan dictionary: %w", err)
	}

	return result, nil
}

// parseLine parses a single dictionary line into an Entry, or returns
// errSkipLine for comments and blank lines.
func parseLine(line string) (Entry, error) {
	if line == "" {
		return Entry{}, errSkipLine
	}
	if strings.HasPrefix(line, ";;;") {
		return Entry{}, errSkipLine
	}

	// Classic format: WORD  PH PH ... (two spaces after the word).
	// cmusphinx cmudict.dict uses a single space; fall back to fields.
	var rawWord, phonemeStr string
	if parts := strings.SplitN(line, "  ", 2); len(parts) == 2 {
		rawWord = strings.TrimSpace(parts[0])
		phonemeStr = strings.TrimSpace(parts[1])
	} else {
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return Entry{}, errSkipLine
		}
		rawWord = fields[0]
		phonemeStr = strings.TrimSpace(fields[1])
	}

	// cmusphinx annotates entries with a trailing "# comment"; everything
	// from the first '#' on is not phoneme data.
	if i := strings.IndexByte(phonemeStr, '#'); i >= 0 {
		phonemeStr = strings.TrimSpace(phonemeStr[:i])
	}

	if rawWord == "" || phonemeStr == "" {
		return Entry{}, errSkipLine
	}

	word, variant := parseWordAndVariant(rawWord)
	if word == "" {
		return Entry{}, errSkipLine
	}

	return Entry{
		Word:     word,
		Variant:  variant,
		Phonemes: strings.Fields(phonemeStr),
	}, nil
}

// parseWordAndVariant splits a raw dictionary word like "HOUSE(2)" into the
// canonical lowercase spelling and its variant index. The primary
// pronunciation has index 0, "(2)" maps to 1, "(3)" to 2, and so on.
func parseWordAndVariant(raw string) (string, int) {
	idx := strings.IndexByte(raw, '(')
	if idx == -1 {
		return strings.ToLower(raw), 0
	}

	end := strings.IndexByte(raw[idx:], ')')
	if end == -1 {
		return strings.ToLower(raw), 0
	}

	n, err := strconv.Atoi(raw[idx+1 : idx+end])
	if err != nil || n < 1 {
		return strings.ToLower(raw), 0
	}

	return strings.ToLower(raw[:idx]), n - 1
}
