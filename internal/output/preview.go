package output

import (
	"fmt"
	"io"
	"strings"

	"codeberg.org/snonux/rhymerank/internal/family"
)

// PrintTop renders the first n rows as an aligned preview table. label
// names the row set ("masculine", "feminine", ...); empty means the
// unpartitioned table.
func PrintTop(w io.Writer, rows []family.Row, n int, label string) {
	if len(rows) == 0 || n <= 0 {
		return
	}
	if n > len(rows) {
		n = len(rows)
	}

	title := "families"
	if label != "" {
		title = label + " families"
	}
	fmt.Fprintf(w, "\nTop %d %s:\n", n, title)
	fmt.Fprintf(w, "%-5s %-24s %5s  %-16s %5s  %s\n",
		"Rank", "Rhyme Unit", "Size", "Representative", "Zipf", "Spelling variants")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range rows[:n] {
		variants := r.SpellingVariants
		if v := []rune(variants); len(v) > 45 {
			variants = string(v[:45])
		}
		fmt.Fprintf(w, "%-5d %-24s %5d  %-16s %5.2f  %s\n",
			i+1, r.Unit, r.FamilySize, r.Representative, r.RepZipf, variants)
	}
}
