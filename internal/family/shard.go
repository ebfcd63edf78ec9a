package family

import (
	"hash/fnv"
	"sync"
)

// AggregateSharded partitions the word list across workers by hashing each
// canonical word into a shard. Every worker owns a disjoint partition and
// its own aggregator, so there are no concurrent writes; afterwards the
// per-shard family maps are merged by union. Ranking sorts members by
// score and source position, so the result matches the sequential pass
// exactly.
func AggregateSharded(words []WordPronunciations, score Scorer, minZipf float64, workers int) *Aggregator {
	if workers <= 1 || len(words) == 0 {
		return Aggregate(words, score, minZipf)
	}
	if workers > len(words) {
		workers = len(words)
	}

	shards := make([]*Aggregator, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		shards[w] = newAggregator(score, minZipf)
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for ord, wp := range words {
				if shardOf(wp.Word, workers) != w {
					continue
				}
				shards[w].addWord(ord, wp.Word, wp.Pronunciations)
			}
		}(w)
	}
	wg.Wait()

	merged := newAggregator(score, minZipf)
	for _, shard := range shards {
		merged.merge(shard)
	}
	return merged
}

func shardOf(word string, workers int) int {
	h := fnv.New32a()
	h.Write([]byte(word))
	return int(h.Sum32() % uint32(workers))
}
