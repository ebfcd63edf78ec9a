package rhyme

import "strings"

// OrthoEnding returns the orthographic rime of a spelling: the substring
// from the last vowel letter (a, e, i, o, u) to the end, lowercased.
// Spellings without a vowel letter return the whole lowercased string.
//
// Within one phonetic family this groups spelling patterns for display,
// e.g. in the /AY1 T/ family "night" → "ight", "write" → "ite",
// "byte" → "yte". A trailing silent 'e' stays included, which correctly
// keeps "ite" distinct from "it". The result has no bearing on family
// membership.
func OrthoEnding(word string) string {
	lower := strings.ToLower(word)

	last := -1
	for i, ch := range lower {
		switch ch {
		case 'a', 'e', 'i', 'o', 'u':
			last = i
		}
	}
	if last < 0 {
		return lower
	}
	return lower[last:]
}
