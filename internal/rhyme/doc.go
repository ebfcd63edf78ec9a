// Package rhyme implements the phonetic core of rhymerank: rhyme-unit
// extraction from ARPAbet phoneme sequences, classification into
// masculine/feminine/dactylic rhyme types, and the orthographic ending
// used to cluster spelling variants. All functions are pure.
package rhyme
