package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"codeberg.org/snonux/rhymerank/internal/cli"
	"codeberg.org/snonux/rhymerank/internal/cmudict"
	"codeberg.org/snonux/rhymerank/internal/download"
	"codeberg.org/snonux/rhymerank/internal/family"
	"codeberg.org/snonux/rhymerank/internal/output"
	"codeberg.org/snonux/rhymerank/internal/rhyme"
	"codeberg.org/snonux/rhymerank/internal/wordfreq"
)

const (
	basicFileName    = "rhyme_families_basic.tsv"
	combinedFileName = "rhyme_families_all.tsv"
)

// Processor runs the rhyme family pipeline end to end
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new pipeline processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// ImportFrequencies loads a word/Zipf frequency list into the database
func (p *Processor) ImportFrequencies(listPath string) error {
	if err := os.MkdirAll(filepath.Dir(p.flags.FreqDBPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := wordfreq.Open(p.flags.FreqDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.ImportList(listPath, p.flags.Locale)
	if err != nil {
		return err
	}

	total, err := store.Count(p.flags.Locale)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d frequencies (%d total for locale %s)\n", n, total, p.flags.Locale)

	return nil
}

// Run executes the full pipeline: load the corpus and frequency scores,
// aggregate rhyme families, then write TSV files and preview tables.
func (p *Processor) Run(ctx context.Context) error {
	if p.flags.Download {
		d := download.New()
		if err := d.EnsureFile(ctx, download.DefaultCMUDictURL, p.flags.CMUDictPath); err != nil {
			return err
		}
	}

	scores, err := p.loadScores()
	if err != nil {
		return err
	}

	fmt.Printf("Parsing pronunciation corpus %s...\n", p.flags.CMUDictPath)
	result, err := cmudict.Parse(p.flags.CMUDictPath)
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d entries (%d unique words, %d comment lines)\n",
		result.Stats.ParsedLines, result.Stats.UniqueWords, result.Stats.CommentLines)

	words := family.Collect(result.Entries)
	score := func(word string) float64 { return scores[word] }

	agg := family.AggregateSharded(words, score, p.flags.MinZipf, p.flags.Workers)
	stats := agg.Stats()
	fmt.Printf("Words kept: %d, below Zipf cutoff %.1f: %d, pronunciations without primary stress: %d\n",
		stats.Kept, p.flags.MinZipf, stats.BelowCutoff, stats.NoStress)

	rows := family.BuildRows(agg.Families(), p.flags.MinFamilySize, p.flags.MaxVariants)
	fmt.Printf("Rhyme families with at least %d members: %d\n", p.flags.MinFamilySize, len(rows))

	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if p.flags.ByType {
		return p.emitTyped(rows)
	}
	return p.emitBasic(rows)
}

// loadScores opens the frequency database and loads all scores for the
// configured locale into memory.
func (p *Processor) loadScores() (map[string]float64, error) {
	store, err := wordfreq.Open(p.flags.FreqDBPath)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	scores, err := store.LoadAll(p.flags.Locale)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, fmt.Errorf("no frequency scores for locale %q in %s (run --import-freq first)",
			p.flags.Locale, p.flags.FreqDBPath)
	}
	fmt.Printf("Loaded %d frequency scores for locale %s\n", len(scores), p.flags.Locale)

	return scores, nil
}

func (p *Processor) emitBasic(rows []family.Row) error {
	path := filepath.Join(p.flags.OutputDir, basicFileName)
	if err := output.WriteTSV(path, rows, output.Columns{}); err != nil {
		return err
	}
	fmt.Printf("Wrote %d families to %s\n", len(rows), path)

	output.PrintTop(os.Stdout, rows, p.flags.TopPreview, "")
	return nil
}

func (p *Processor) emitTyped(rows []family.Row) error {
	byType := family.SplitByType(rows)

	for _, t := range rhyme.Types {
		typed := byType[t]
		path := filepath.Join(p.flags.OutputDir, fmt.Sprintf("rhyme_families_%s.tsv", t))
		if err := output.WriteTSV(path, typed, output.Columns{Syllables: true}); err != nil {
			return err
		}
		fmt.Printf("Wrote %d %s families to %s\n", len(typed), t, path)
	}

	combined := filepath.Join(p.flags.OutputDir, combinedFileName)
	if err := output.WriteTSV(combined, rows, output.Columns{Type: true, Syllables: true}); err != nil {
		return err
	}
	fmt.Printf("Wrote %d families to %s\n", len(rows), combined)

	for _, t := range rhyme.Types {
		output.PrintTop(os.Stdout, byType[t], p.flags.TopPreview, t.String())
	}

	p.printTypeSummary(byType)
	return nil
}

func (p *Processor) printTypeSummary(byType map[rhyme.Type][]family.Row) {
	types := make([]rhyme.Type, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	fmt.Printf("\n=== Rhyme Type Summary ===\n")
	for _, t := range types {
		rows := byType[t]
		totalWords := 0
		for _, r := range rows {
			totalWords += r.FamilySize
		}
		fmt.Printf("%-10s %5d families, %6d words\n", t, len(rows), totalWords)
	}
	fmt.Printf("==========================\n")
}
