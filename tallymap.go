package wordtally

import "github.com/cespare/xxhash/v2"

// TallyMap is the hash map at the core of this package: word to
// occurrence count. It favors entry-by-reference insert semantics (a
// single map access per word, no double lookup) the way Rust's
// hashbrown entry API does, and exposes a merge operation that always
// folds the smaller map into the larger one, since iterating the
// smaller side costs less than iterating the larger one.
type TallyMap struct {
	m map[Word]Count
}

// NewTallyMap constructs an empty TallyMap pre-sized to capacity, per the
// capacity heuristics in performance.go.
func NewTallyMap(capacity int) *TallyMap {
	if capacity < 0 {
		capacity = 0
	}
	return &TallyMap{m: make(map[Word]Count, capacity)}
}

// Insert increments the count for w by one.
func (t *TallyMap) Insert(w Word) {
	t.m[w]++
}

// InsertN increments the count for w by n, used when merging pre-counted
// chunk results rather than tallying one observation at a time.
func (t *TallyMap) InsertN(w Word, n Count) {
	if n == 0 {
		return
	}
	t.m[w] += n
}

// AddWords drives the segmenter over text and increments counts for
// every emitted word, matching the entry-by-reference insert semantics
// described in the TallyMap design: each token causes exactly one map
// access.
func (t *TallyMap) AddWords(text string, c Case, enc Encoding) error {
	return segmentWords(text, c, enc, t.Insert)
}

// Len returns the number of distinct words currently tallied.
func (t *TallyMap) Len() int {
	return len(t.m)
}

// Get returns the count for w and whether it was present.
func (t *TallyMap) Get(w Word) (Count, bool) {
	c, ok := t.m[w]
	return c, ok
}

// Range calls f for every word/count pair. Iteration order is
// unspecified, matching Go's native map iteration.
func (t *TallyMap) Range(f func(Word, Count) bool) {
	for w, c := range t.m {
		if !f(w, c) {
			return
		}
	}
}

// Merge folds src into t, always iterating whichever of the two maps is
// smaller. This mirrors the original implementation's merge-smaller-
// into-larger optimization for combining per-chunk tallies: the map
// with fewer entries is always the one walked, and its keys are
// inserted into the larger map, which then becomes (or remains) t's
// backing map.
func (t *TallyMap) Merge(src *TallyMap) {
	if src == nil || src.Len() == 0 {
		return
	}
	if t.Len() == 0 {
		t.m = src.m
		return
	}
	if src.Len() > t.Len() {
		t.m, src.m = src.m, t.m
	}
	for w, c := range src.m {
		t.m[w] += c
	}
}

// Retain removes every entry for which keep returns false, used to apply
// the min_chars/min_count filters in place without a second map.
func (t *TallyMap) Retain(keep func(Word, Count) bool) {
	for w, c := range t.m {
		if !keep(w, c) {
			delete(t.m, w)
		}
	}
}

// shardCount is the number of hash-partitioned buckets used by
// mergeShards to parallelize the combination of many per-worker
// TallyMaps: each bucket can be merged on its own goroutine because no
// two buckets ever share a key, by construction of shardOf.
const shardCount = 16

// shardOf returns which of shardCount buckets w belongs to, using a
// non-cryptographic hash so the distribution is fast and stable across
// a single run (it need not be stable across runs or versions).
func shardOf(w Word) int {
	return int(xxhash.Sum64String(string(w)) % shardCount)
}

// split partitions t into shardCount TallyMaps by shardOf, so that the
// parallel strategies can merge many worker results shard-by-shard on
// separate goroutines instead of serializing on a single destination map.
func (t *TallyMap) split() [shardCount]*TallyMap {
	var shards [shardCount]*TallyMap
	for i := range shards {
		shards[i] = NewTallyMap(t.Len() / shardCount)
	}
	for w, c := range t.m {
		shards[shardOf(w)].InsertN(w, c)
	}
	return shards
}

// mergeShards combines many worker TallyMaps into one, merging each of
// the shardCount partitions concurrently via merge. Workers is expected
// to be small (bounded by thread count), so the shard-split cost is
// paid once per worker and the merge itself parallelizes across shards.
func mergeShards(maps []*TallyMap) *TallyMap {
	switch len(maps) {
	case 0:
		return NewTallyMap(0)
	case 1:
		return maps[0]
	}

	allShards := make([][shardCount]*TallyMap, len(maps))
	for i, m := range maps {
		allShards[i] = m.split()
	}

	results := make([]*TallyMap, shardCount)
	done := make(chan int, shardCount)
	for s := 0; s < shardCount; s++ {
		go func(s int) {
			merged := NewTallyMap(0)
			for i := range allShards {
				merged.Merge(allShards[i][s])
			}
			results[s] = merged
			done <- s
		}(s)
	}
	for range shardCount {
		<-done
	}

	final := NewTallyMap(0)
	for _, m := range results {
		final.Merge(m)
	}
	return final
}
