package cmudict

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantWord     string
		wantVariant  int
		wantPhonemes []string
		wantSkip     bool
	}{
		{
			name:         "simple word",
			line:         "HELLO  HH AH0 L OW1",
			wantWord:     "hello",
			wantVariant:  0,
			wantPhonemes: []string{"HH", "AH0", "L", "OW1"},
		},
		{
			name:         "variant 2",
			line:         "HOUSE(2)  HH AW1 Z",
			wantWord:     "house",
			wantVariant:  1,
			wantPhonemes: []string{"HH", "AW1", "Z"},
		},
		{
			name:         "variant 3",
			line:         "THE(3)  DH IY0",
			wantWord:     "the",
			wantVariant:  2,
			wantPhonemes: []string{"DH", "IY0"},
		},
		{
			name:         "single space separator",
			line:         "cat K AE1 T",
			wantWord:     "cat",
			wantVariant:  0,
			wantPhonemes: []string{"K", "AE1", "T"},
		},
		{
			name:         "trailing entry comment",
			line:         "aaa T R IH2 P AH0 L EY1 # abbreviation",
			wantWord:     "aaa",
			wantVariant:  0,
			wantPhonemes: []string{"T", "R", "IH2", "P", "AH0", "L", "EY1"},
		},
		{
			name:         "trailing entry comment in two-space format",
			line:         "AAA  T R IH2 P AH0 L EY1 # abbreviation",
			wantWord:     "aaa",
			wantVariant:  0,
			wantPhonemes: []string{"T", "R", "IH2", "P", "AH0", "L", "EY1"},
		},
		{
			name:     "comment line",
			line:     ";;; a comment",
			wantSkip: true,
		},
		{
			name:     "entry with only a comment",
			line:     "EMPTY # nothing here",
			wantSkip: true,
		},
		{
			name:     "empty line",
			line:     "",
			wantSkip: true,
		},
		{
			name:     "word without phonemes",
			line:     "LONELY",
			wantSkip: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := parseLine(tt.line)
			if tt.wantSkip {
				if err != errSkipLine {
					t.Errorf("parseLine(%q) err = %v, want errSkipLine", tt.line, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLine(%q) returned error: %v", tt.line, err)
			}
			if entry.Word != tt.wantWord {
				t.Errorf("Word = %q, want %q", entry.Word, tt.wantWord)
			}
			if entry.Variant != tt.wantVariant {
				t.Errorf("Variant = %d, want %d", entry.Variant, tt.wantVariant)
			}
			if !reflect.DeepEqual(entry.Phonemes, tt.wantPhonemes) {
				t.Errorf("Phonemes = %v, want %v", entry.Phonemes, tt.wantPhonemes)
			}
		})
	}
}

func TestParseWordAndVariant(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantWord    string
		wantVariant int
	}{
		{"no variant", "HELLO", "hello", 0},
		{"variant 2", "HOUSE(2)", "house", 1},
		{"variant 3", "THE(3)", "the", 2},
		{"variant 10", "WORD(10)", "word", 9},
		{"already lowercase", "hello", "hello", 0},
		{"unclosed parenthesis", "ODD(", "odd(", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, variant := parseWordAndVariant(tt.raw)
			if word != tt.wantWord {
				t.Errorf("word = %q, want %q", word, tt.wantWord)
			}
			if variant != tt.wantVariant {
				t.Errorf("variant = %d, want %d", variant, tt.wantVariant)
			}
		})
	}
}

func TestParse(t *testing.T) {
	result, err := Parse(filepath.Join("testdata", "sample.dict"))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if result.Stats.TotalLines != 13 {
		t.Errorf("TotalLines = %d, want 13", result.Stats.TotalLines)
	}
	if result.Stats.CommentLines != 2 {
		t.Errorf("CommentLines = %d, want 2", result.Stats.CommentLines)
	}
	if result.Stats.ParsedLines != 11 {
		t.Errorf("ParsedLines = %d, want 11", result.Stats.ParsedLines)
	}
	// hello, house, read, night, write, cat, nra, aaa, the
	if result.Stats.UniqueWords != 9 {
		t.Errorf("UniqueWords = %d, want 9", result.Stats.UniqueWords)
	}
	if len(result.Entries) != 11 {
		t.Fatalf("len(Entries) = %d, want 11", len(result.Entries))
	}

	// Entries keep file order; first entry is hello.
	first := result.Entries[0]
	if first.Word != "hello" || first.Variant != 0 {
		t.Errorf("first entry = %q variant %d, want hello variant 0", first.Word, first.Variant)
	}

	// house appears twice with distinct variants.
	var houseVariants []int
	for _, e := range result.Entries {
		if e.Word == "house" {
			houseVariants = append(houseVariants, e.Variant)
		}
	}
	if !reflect.DeepEqual(houseVariants, []int{0, 1}) {
		t.Errorf("house variants = %v, want [0 1]", houseVariants)
	}

	// The annotated line keeps only phoneme data.
	for _, e := range result.Entries {
		if e.Word == "aaa" {
			if !reflect.DeepEqual(e.Phonemes, []string{"T", "R", "IH2", "P", "AH0", "L", "EY1"}) {
				t.Errorf("aaa phonemes = %v, want comment stripped", e.Phonemes)
			}
		}
	}

	// The single-space line parses too.
	last := result.Entries[len(result.Entries)-1]
	if last.Word != "the" {
		t.Errorf("last entry = %q, want the", last.Word)
	}
	if !reflect.DeepEqual(last.Phonemes, []string{"DH", "AH0"}) {
		t.Errorf("the phonemes = %v, want [DH AH0]", last.Phonemes)
	}
}

func TestParse_FileNotFound(t *testing.T) {
	if _, err := Parse("/nonexistent/file.dict"); err == nil {
		t.Error("Parse should return an error for a missing file")
	}
}

func TestParse_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.dict")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse should not error on an empty file: %v", err)
	}
	if len(result.Entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(result.Entries))
	}
}
