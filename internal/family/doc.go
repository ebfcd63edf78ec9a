// Package family accumulates words into rhyme families keyed by rhyme
// unit, builds per-family summary rows and ranks them. Aggregation runs
// either as a single sequential pass or sharded across workers over
// disjoint word partitions; both produce identical output.
package family
