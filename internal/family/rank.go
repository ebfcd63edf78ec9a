package family

import (
	"sort"

	"codeberg.org/snonux/rhymerank/internal/rhyme"
)

// BuildRows converts every family holding at least minFamilySize members
// into a summary row and ranks the rows: largest family first, then
// highest representative score, then unit for a total order. Smaller
// families are dropped outright.
func BuildRows(families map[rhyme.Unit]*Family, minFamilySize, maxVariants int) []Row {
	var rows []Row
	for _, fam := range families {
		if len(fam.Members) < minFamilySize {
			continue
		}
		rows = append(rows, BuildRow(fam, maxVariants))
	}
	SortRows(rows)
	return rows
}

// SortRows orders rows by descending family size, then descending
// representative score, then ascending unit.
func SortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].FamilySize != rows[j].FamilySize {
			return rows[i].FamilySize > rows[j].FamilySize
		}
		if rows[i].RepZipf != rows[j].RepZipf {
			return rows[i].RepZipf > rows[j].RepZipf
		}
		return rows[i].Unit < rows[j].Unit
	})
}

// SplitByType partitions ranked rows by rhyme type, preserving their
// relative order.
func SplitByType(rows []Row) map[rhyme.Type][]Row {
	byType := make(map[rhyme.Type][]Row)
	for _, r := range rows {
		byType[r.Type] = append(byType[r.Type], r)
	}
	return byType
}
