package rhyme

import "strings"

// Unit is a rhyme unit: the phoneme suffix from the last primary-stressed
// vowel to the end of a pronunciation, space-joined so it compares by value
// and works as a map key.
type Unit string

// Phonemes returns the unit's phoneme sequence.
func (u Unit) Phonemes() []string {
	return strings.Fields(string(u))
}

// VowelCount counts the syllable nuclei (vowel phonemes) in the unit,
// including the stressed vowel itself.
func (u Unit) VowelCount() int {
	count := 0
	for _, ph := range u.Phonemes() {
		if IsVowel(ph) {
			count++
		}
	}
	return count
}

// IsVowel reports whether an ARPAbet phoneme is a vowel. Vowel phonemes
// carry a stress digit (0, 1 or 2) as their final character; consonants
// carry none.
func IsVowel(phoneme string) bool {
	if phoneme == "" {
		return false
	}
	last := phoneme[len(phoneme)-1]
	return last == '0' || last == '1' || last == '2'
}

// HasPrimaryStress reports whether a phoneme is a primary-stressed vowel
// ('1' stress digit, e.g. "AE1").
func HasPrimaryStress(phoneme string) bool {
	return strings.HasSuffix(phoneme, "1")
}

// UnitOf extracts the rhyme unit from a phoneme sequence: all phonemes
// from the last primary-stressed vowel onward. When several vowels carry
// primary stress, the last one wins — rhyme is judged from the final
// stressed syllable.
//
// Examples:
//
//	[K AE1 T]             → (AE1 T)          cat
//	[N AY1 T]             → (AY1 T)          night
//	[R AY1 T]             → (AY1 T)          write (same family)
//	[R IH0 T ER1 N]       → (ER1 N)          return
//
// The second return value is false when no phoneme carries primary stress
// (some abbreviations and symbols); such pronunciations belong to no
// family.
func UnitOf(phonemes []string) (Unit, bool) {
	last := -1
	for i, ph := range phonemes {
		if HasPrimaryStress(ph) {
			last = i
		}
	}
	if last < 0 {
		return "", false
	}
	return Unit(strings.Join(phonemes[last:], " ")), true
}
