package rhyme

// Type classifies a rhyme by how many unstressed syllables trail the final
// stressed one.
type Type int

const (
	// Masculine rhymes stress the final syllable ("return" / "concern").
	Masculine Type = iota
	// Feminine rhymes carry one trailing syllable ("lover" / "cover").
	Feminine
	// Dactylic rhymes carry two or more ("flattery" / "battery").
	Dactylic
)

// Types lists all rhyme types in canonical order.
var Types = []Type{Masculine, Feminine, Dactylic}

// String returns the lowercase type name used in output tables.
func (t Type) String() string {
	switch t {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	default:
		return "dactylic"
	}
}

// Classify returns the rhyme type of a unit together with the number of
// unstressed syllables after the stressed vowel. The type is a total
// function of the unit's vowel count: 1 vowel is masculine, 2 feminine,
// 3 or more dactylic.
func Classify(u Unit) (Type, int) {
	vowels := u.VowelCount()
	after := vowels - 1

	switch {
	case vowels <= 1:
		return Masculine, after
	case vowels == 2:
		return Feminine, after
	default:
		return Dactylic, after
	}
}
