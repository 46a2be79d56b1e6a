package sortedset

import "sort"

// Outcome reports what a mutating operation actually did.
type Outcome int

const (
	Added Outcome = iota
	Duplicate
	Removed
	Absent
)

// sortedSetEngine is the single-threaded core: an ordered sequence of
// buckets whose concatenation is always the full sorted, deduplicated
// set. It is never shared directly with callers; Set wraps one
// instance behind a lock.
type sortedSetEngine struct {
	buckets       []*bucket
	maxBucketSize int
	size          int
}

func newEngine(initialItemCapacity, maxBucketSize int) *sortedSetEngine {
	return &sortedSetEngine{
		buckets:       []*bucket{newBucketWithHint(maxBucketSize, initialItemCapacity)},
		maxBucketSize: maxBucketSize,
	}
}

// locate scans buckets in order and returns the first whose last
// element is >= item, or the final bucket if none qualifies (append
// tail). It also returns the prefix rank: the number of items in all
// buckets before the chosen one, needed to turn a local index into a
// global one.
func (e *sortedSetEngine) locate(item Item) (idx int, prefixRank int) {
	prefix := 0
	for i, b := range e.buckets {
		last, ok := b.last()
		if !ok || compareItems(last, item) >= 0 {
			return i, prefix
		}
		prefix += b.len()
	}
	return len(e.buckets) - 1, prefix - e.buckets[len(e.buckets)-1].len()
}

// insert locates the owning bucket, inserts item, and splits the
// bucket if the insertion pushed it past capacity. A single insertion
// can only trigger one split, since it grows the set by exactly one
// item.
func (e *sortedSetEngine) insert(item Item) (index int, outcome Outcome) {
	i, prefix := e.locate(item)
	b := e.buckets[i]
	local, inserted := b.insert(item)
	if !inserted {
		return prefix + local, Duplicate
	}
	e.size++
	if b.overflowed() {
		nb := b.split()
		e.buckets = append(e.buckets, nil)
		copy(e.buckets[i+2:], e.buckets[i+1:])
		e.buckets[i+1] = nb
	}
	return prefix + local, Added
}

// remove locates the owning bucket and removes item, dropping the
// bucket only when it becomes empty and is not the sole remaining
// bucket.
func (e *sortedSetEngine) remove(item Item) (index int, outcome Outcome) {
	i, prefix := e.locate(item)
	b := e.buckets[i]
	local, removed := b.remove(item)
	if !removed {
		return 0, Absent
	}
	e.size--
	if b.len() == 0 && len(e.buckets) > 1 {
		e.buckets = append(e.buckets[:i], e.buckets[i+1:]...)
	}
	return prefix + local, Removed
}

// at walks the buckets in order, subtracting each bucket's length from
// the residual index, until the item falls within a bucket.
func (e *sortedSetEngine) at(index int) (Item, bool) {
	if index < 0 || index >= e.size {
		return Item{}, false
	}
	residual := index
	for _, b := range e.buckets {
		if residual < b.len() {
			return b.at(residual), true
		}
		residual -= b.len()
	}
	return Item{}, false
}

// slice reads up to count items starting at start, clamped to the
// set's actual size.
func (e *sortedSetEngine) slice(start, count int) []Item {
	if start < 0 || start >= e.size || count <= 0 {
		return []Item{}
	}
	remaining := count
	if start+count > e.size {
		remaining = e.size - start
	}
	out := make([]Item, 0, remaining)

	residual := start
	startBucket := 0
	for i, b := range e.buckets {
		if residual < b.len() {
			startBucket = i
			break
		}
		residual -= b.len()
	}
	for i := startBucket; i < len(e.buckets) && remaining > 0; i++ {
		b := e.buckets[i]
		for j := residual; j < b.len() && remaining > 0; j++ {
			out = append(out, b.at(j))
			remaining--
		}
		residual = 0
	}
	return out
}

// findIndex locates the owning bucket and reports item's global index,
// if it is present.
func (e *sortedSetEngine) findIndex(item Item) (int, bool) {
	i, prefix := e.locate(item)
	local, found := e.buckets[i].find(item)
	if !found {
		return 0, false
	}
	return prefix + local, true
}

// toList concatenates every bucket's contents in order.
func (e *sortedSetEngine) toList() []Item {
	out := make([]Item, 0, e.size)
	for _, b := range e.buckets {
		out = append(out, b.items...)
	}
	return out
}

// buildFromSorted is the proper-enumerable bulk constructor: items
// must already be strictly increasing and unique.
func buildFromSorted(items []Item, maxBucketSize int) *sortedSetEngine {
	e := &sortedSetEngine{maxBucketSize: maxBucketSize}
	if len(items) == 0 {
		e.buckets = []*bucket{newBucket(maxBucketSize)}
		return e
	}
	for start := 0; start < len(items); start += maxBucketSize {
		end := start + maxBucketSize
		if end > len(items) {
			end = len(items)
		}
		b := newBucket(maxBucketSize)
		b.items = append(b.items, items[start:end]...)
		e.buckets = append(e.buckets, b)
	}
	e.size = len(items)
	return e
}

// isSortedUnique reports whether items is strictly increasing, the
// precondition buildFromSorted/FromProperEnumerable require.
func isSortedUnique(items []Item) bool {
	for i := 1; i < len(items); i++ {
		if compareItems(items[i-1], items[i]) >= 0 {
			return false
		}
	}
	return true
}

// sortAndDedup is the arbitrary-enumerable path: sort, then collapse
// equal runs, before handing off to buildFromSorted.
func sortAndDedup(items []Item) []Item {
	cp := append([]Item(nil), items...)
	sort.Slice(cp, func(i, j int) bool {
		return compareItems(cp[i], cp[j]) < 0
	})
	out := cp[:0]
	for i, it := range cp {
		if i == 0 || compareItems(out[len(out)-1], it) != 0 {
			out = append(out, it)
		}
	}
	return out
}
