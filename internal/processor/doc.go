// Package processor contains the core pipeline logic for grouping English
// words into rhyme families. It orchestrates corpus download, dictionary
// parsing, frequency scoring, family aggregation, and TSV output. This
// package serves as the main coordinator between all other components.
package processor
