package sortedset

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Set is a handle to one bucketed sorted-set instance. Every method
// acquires the set's single lock, runs straight-line code against the
// engine, and releases the lock before returning. There is no
// finer-grained locking and no suspension inside a held lock besides
// the initial acquisition itself.
type Set struct {
	sem    *semaphore.Weighted
	policy LockPolicy
	engine *sortedSetEngine
}

// New creates an empty set. A zero Config field takes its default
// (initial_item_capacity=500, max_bucket_size=500, Blocking); a
// negative capacity is rejected with ErrInvalidInput.
func New(cfg Config) (*Set, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	return &Set{
		sem:    semaphore.NewWeighted(1),
		policy: cfg.LockPolicy,
		engine: newEngine(cfg.InitialItemCapacity, cfg.MaxBucketSize),
	}, nil
}

// FromProperEnumerable builds a set from items that the caller asserts
// are already strictly increasing and duplicate-free. The assertion is
// verified; a violation returns ErrInvalidInput and no set, per the
// Open Question decision in DESIGN.md to validate rather than silently
// build a broken set.
func FromProperEnumerable(items []Item, cfg Config) (*Set, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if !isSortedUnique(items) {
		return nil, ErrInvalidInput
	}
	return &Set{
		sem:    semaphore.NewWeighted(1),
		policy: cfg.LockPolicy,
		engine: buildFromSorted(items, cfg.MaxBucketSize),
	}, nil
}

// FromEnumerable builds a set from arbitrary items by sorting and
// deduplicating them before delegating to the proper-enumerable path.
func FromEnumerable(items []Item, cfg Config) (*Set, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	return &Set{
		sem:    semaphore.NewWeighted(1),
		policy: cfg.LockPolicy,
		engine: buildFromSorted(sortAndDedup(items), cfg.MaxBucketSize),
	}, nil
}

// lock acquires the set's single lock according to its configured
// policy. Under TryAcquire it fails fast with ErrContended instead of
// waiting.
func (s *Set) lock() error {
	if s.policy == TryAcquire {
		if !s.sem.TryAcquire(1) {
			return ErrContended
		}
		return nil
	}
	// Blocking: context.Background() never cancels, so this only
	// ever returns once the lock is acquired.
	return s.sem.Acquire(context.Background(), 1)
}

func (s *Set) unlock() {
	s.sem.Release(1)
}

// Add inserts item, reporting whether it was newly added or was
// already present.
func (s *Set) Add(item Item) (Outcome, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	_, outcome := s.engine.insert(item)
	return outcome, nil
}

// IndexAdd inserts item like Add, additionally reporting the item's
// global index: the position it was inserted at, or the position of
// the pre-existing duplicate.
func (s *Set) IndexAdd(item Item) (int, Outcome, error) {
	if err := s.lock(); err != nil {
		return 0, 0, err
	}
	defer s.unlock()
	index, outcome := s.engine.insert(item)
	return index, outcome, nil
}

// Remove deletes item, reporting whether it was removed or was already
// absent.
func (s *Set) Remove(item Item) (Outcome, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	_, outcome := s.engine.remove(item)
	return outcome, nil
}

// IndexRemove deletes item like Remove, additionally reporting the
// global index it occupied before removal. If item is not present it
// returns ErrNotPresent and the set is unchanged.
func (s *Set) IndexRemove(item Item) (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	index, outcome := s.engine.remove(item)
	if outcome == Absent {
		return 0, ErrNotPresent
	}
	return index, nil
}

// Size returns the total number of items currently in the set.
func (s *Set) Size() (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	return s.engine.size, nil
}

// At returns the item at the given global index. If index is out of
// bounds, it returns def[0] if supplied, otherwise ErrOutOfBounds.
func (s *Set) At(index int, def ...Item) (Item, error) {
	if err := s.lock(); err != nil {
		return Item{}, err
	}
	defer s.unlock()
	item, ok := s.engine.at(index)
	if ok {
		return item, nil
	}
	if len(def) > 0 {
		return def[0], nil
	}
	return Item{}, ErrOutOfBounds
}

// Slice returns up to count items starting at the global index start,
// in sorted order. An out-of-range start yields an empty slice; a
// count that would run past the end is truncated.
func (s *Set) Slice(start, count int) ([]Item, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.unlock()
	return s.engine.slice(start, count), nil
}

// FindIndex returns item's global index, or ErrNotPresent if it is not
// a member of the set.
func (s *Set) FindIndex(item Item) (int, error) {
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	index, found := s.engine.findIndex(item)
	if !found {
		return 0, ErrNotPresent
	}
	return index, nil
}

// ToList returns every item in the set, in sorted order.
func (s *Set) ToList() ([]Item, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.unlock()
	return s.engine.toList(), nil
}
