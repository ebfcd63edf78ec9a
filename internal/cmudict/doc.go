// Package cmudict parses CMU Pronouncing Dictionary files into per-word
// ARPAbet phoneme sequences. Alternate pronunciations marked with a
// parenthetical suffix like "WORD(2)" are folded back onto the canonical
// lowercase spelling with a variant index. Pure function: file path in,
// entries out.
package cmudict
