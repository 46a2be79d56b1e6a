package sortedset

import "sort"

// bucket is a bounded, strictly increasing run of Items. It performs
// its own intra-bucket insert/remove/find/at; it never splits itself.
// The owning engine decides when a bucket that has grown past capacity
// needs to be split.
type bucket struct {
	capacity int
	items    []Item
}

func newBucket(capacity int) *bucket {
	return newBucketWithHint(capacity, capacity)
}

// newBucketWithHint builds a bucket whose logical capacity (the hard
// per-bucket limit, always the engine's configured max bucket size) is
// kept separate from prealloc, an advisory hint for how large to
// pre-allocate the backing slice.
func newBucketWithHint(capacity, prealloc int) *bucket {
	return &bucket{capacity: capacity, items: make([]Item, 0, prealloc)}
}

// find performs a binary search over the strictly increasing items and
// reports either the local index of an exact match, or the position at
// which item would have to be inserted to keep the slice sorted.
func (b *bucket) find(item Item) (localIndex int, found bool) {
	pos := sort.Search(len(b.items), func(i int) bool {
		return compareItems(b.items[i], item) >= 0
	})
	if pos < len(b.items) && compareItems(b.items[pos], item) == 0 {
		return pos, true
	}
	return pos, false
}

// insert places item at its sorted position. It reports the local
// index and whether the item was newly inserted (false means the item
// was already present, at the returned index). Callers are responsible
// for checking b.overflowed() afterward and splitting if necessary.
func (b *bucket) insert(item Item) (localIndex int, inserted bool) {
	pos, found := b.find(item)
	if found {
		return pos, false
	}
	b.items = append(b.items, Item{})
	copy(b.items[pos+1:], b.items[pos:])
	b.items[pos] = item
	return pos, true
}

// remove erases item if present, reporting the local index it occupied
// and whether anything was removed.
func (b *bucket) remove(item Item) (localIndex int, removed bool) {
	pos, found := b.find(item)
	if !found {
		return 0, false
	}
	b.items = append(b.items[:pos], b.items[pos+1:]...)
	return pos, true
}

// at returns the item at the given local index. The caller must ensure
// 0 <= localIndex < b.len().
func (b *bucket) at(localIndex int) Item {
	return b.items[localIndex]
}

func (b *bucket) len() int {
	return len(b.items)
}

func (b *bucket) overflowed() bool {
	return len(b.items) > b.capacity
}

func (b *bucket) last() (Item, bool) {
	if len(b.items) == 0 {
		return Item{}, false
	}
	return b.items[len(b.items)-1], true
}

// split removes the upper half of b's items and returns them as a new
// bucket with the same capacity, leaving b holding the lower half. Both
// halves end up at or under capacity.
func (b *bucket) split() *bucket {
	mid := len(b.items) / 2
	upper := append([]Item(nil), b.items[mid:]...)
	b.items = b.items[:mid:mid]
	nb := newBucket(b.capacity)
	nb.items = append(nb.items, upper...)
	return nb
}
