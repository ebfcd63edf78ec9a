// Package wordfreq provides Zipf-scale word commonality scores backed by a
// local SQLite store. Scores are imported once from a plain frequency list
// (word<TAB>zipf per line) and looked up per locale. On the Zipf scale a
// score of 6 is roughly "the", 5 "love", 4 "rhyme", 3 borderline common,
// below 2 obscure.
package wordfreq
