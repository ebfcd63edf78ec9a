package family

import (
	"codeberg.org/snonux/rhymerank/internal/cmudict"
	"codeberg.org/snonux/rhymerank/internal/rhyme"
)

// Scorer supplies the Zipf commonality score for a canonical word.
type Scorer func(word string) float64

// Member is one word in a family with its score. The ord field records the
// word's position in the source iteration and breaks score ties, so equal
// scores resolve to the word seen first.
type Member struct {
	Word string
	Zipf float64

	ord int
}

// Family holds the members sharing one rhyme unit.
type Family struct {
	Unit    rhyme.Unit
	Members []Member

	seen map[string]bool
}

// Stats counts aggregation outcomes for the run summary.
type Stats struct {
	Kept        int // words contributing to at least one family
	BelowCutoff int // words excluded entirely by the Zipf cutoff
	NoStress    int // pronunciations skipped for lacking a primary stress
}

// WordPronunciations pairs a canonical word with all of its pronunciation
// variants in source order.
type WordPronunciations struct {
	Word           string
	Pronunciations [][]string
}

// Collect groups parsed dictionary entries by canonical word, preserving
// the order in which words first appear in the source.
func Collect(entries []cmudict.Entry) []WordPronunciations {
	index := make(map[string]int)
	var words []WordPronunciations

	for _, e := range entries {
		i, ok := index[e.Word]
		if !ok {
			i = len(words)
			index[e.Word] = i
			words = append(words, WordPronunciations{Word: e.Word})
		}
		words[i].Pronunciations = append(words[i].Pronunciations, e.Phonemes)
	}
	return words
}

// Aggregator groups words into rhyme families. It is constructed fresh per
// pipeline run and owns its maps outright; nothing is process-global.
type Aggregator struct {
	score    Scorer
	minZipf  float64
	families map[rhyme.Unit]*Family
	stats    Stats
}

func newAggregator(score Scorer, minZipf float64) *Aggregator {
	return &Aggregator{
		score:    score,
		minZipf:  minZipf,
		families: make(map[rhyme.Unit]*Family),
	}
}

// Aggregate runs the sequential single-pass grouping over all words.
func Aggregate(words []WordPronunciations, score Scorer, minZipf float64) *Aggregator {
	a := newAggregator(score, minZipf)
	for ord, wp := range words {
		a.addWord(ord, wp.Word, wp.Pronunciations)
	}
	return a
}

// addWord processes one canonical word with all of its pronunciation
// variants. The frequency cutoff applies to the word as a whole: a word
// below the cutoff joins no family regardless of its pronunciations. For a
// qualifying word every variant is considered — a word legitimately joins
// one family per distinct rhyme unit its pronunciations produce, but never
// the same family twice.
func (a *Aggregator) addWord(ord int, word string, pronunciations [][]string) {
	z := a.score(word)
	if z < a.minZipf {
		a.stats.BelowCutoff++
		return
	}

	var unitsSeen map[rhyme.Unit]bool
	for _, phonemes := range pronunciations {
		unit, ok := rhyme.UnitOf(phonemes)
		if !ok {
			a.stats.NoStress++
			continue
		}
		if unitsSeen[unit] {
			// Two variants collapsed onto the same unit.
			continue
		}
		if unitsSeen == nil {
			unitsSeen = make(map[rhyme.Unit]bool)
		}
		unitsSeen[unit] = true
		a.insert(unit, word, z, ord)
	}

	if len(unitsSeen) > 0 {
		a.stats.Kept++
	}
}

func (a *Aggregator) insert(unit rhyme.Unit, word string, z float64, ord int) {
	fam := a.families[unit]
	if fam == nil {
		fam = &Family{Unit: unit, seen: make(map[string]bool)}
		a.families[unit] = fam
	}
	if fam.seen[word] {
		return
	}
	fam.seen[word] = true
	fam.Members = append(fam.Members, Member{Word: word, Zipf: z, ord: ord})
}

// merge unions another aggregator's families into this one. Shards hold
// disjoint word sets, so no member can appear twice and scores never
// conflict.
func (a *Aggregator) merge(other *Aggregator) {
	for unit, fam := range other.families {
		dst := a.families[unit]
		if dst == nil {
			a.families[unit] = fam
			continue
		}
		dst.Members = append(dst.Members, fam.Members...)
		for w := range fam.seen {
			dst.seen[w] = true
		}
	}
	a.stats.Kept += other.stats.Kept
	a.stats.BelowCutoff += other.stats.BelowCutoff
	a.stats.NoStress += other.stats.NoStress
}

// Families returns the accumulated families keyed by rhyme unit.
func (a *Aggregator) Families() map[rhyme.Unit]*Family {
	return a.families
}

// Stats returns the aggregation counters.
func (a *Aggregator) Stats() Stats {
	return a.stats
}
