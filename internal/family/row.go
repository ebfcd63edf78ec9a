package family

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/snonux/rhymerank/internal/rhyme"
)

// Row is the display projection of one qualifying rhyme family.
type Row struct {
	Type             rhyme.Type
	Unit             rhyme.Unit
	SyllablesAfter   int
	FamilySize       int
	Representative   string
	RepZipf          float64
	SpellingVariants string
	AllWords         string
}

// BuildRow produces the summary row for a family. Members sort by score
// descending with source position breaking ties, so the representative for
// equal top scores is the word seen first. maxVariants caps only the
// spelling-variant summary; the full member list is never truncated.
func BuildRow(fam *Family, maxVariants int) Row {
	members := make([]Member, len(fam.Members))
	copy(members, fam.Members)
	sort.Slice(members, func(i, j int) bool {
		if members[i].Zipf != members[j].Zipf {
			return members[i].Zipf > members[j].Zipf
		}
		return members[i].ord < members[j].ord
	})

	rep := members[0]
	rtype, after := rhyme.Classify(fam.Unit)

	// Best-scoring member per distinct orthographic ending. Members are
	// already score-sorted, so the first hit per ending wins.
	seenEnding := make(map[string]bool)
	var variants []string
	for _, m := range members {
		ending := rhyme.OrthoEnding(m.Word)
		if seenEnding[ending] {
			continue
		}
		seenEnding[ending] = true
		variants = append(variants, fmt.Sprintf("%s (%.1f)", m.Word, m.Zipf))
	}
	if len(variants) > maxVariants {
		variants = variants[:maxVariants]
	}

	allWords := make([]string, len(members))
	for i, m := range members {
		allWords[i] = m.Word
	}

	return Row{
		Type:             rtype,
		Unit:             fam.Unit,
		SyllablesAfter:   after,
		FamilySize:       len(members),
		Representative:   rep.Word,
		RepZipf:          rep.Zipf,
		SpellingVariants: strings.Join(variants, ",  "),
		AllWords:         strings.Join(allWords, ", "),
	}
}
