package sortedset

// LockPolicy selects how the concurrency wrapper acquires its single
// lock around every operation.
type LockPolicy int

const (
	// Blocking waits until the lock is free. No operation reports
	// lock contention. This is the default.
	Blocking LockPolicy = iota
	// TryAcquire fails immediately with ErrContended if the lock is
	// held, leaving the caller to retry with its own backoff.
	TryAcquire
)

const (
	defaultInitialItemCapacity = 500
	defaultMaxBucketSize       = 500
)

// Config configures a new Set. The zero Config is usable: New
// normalizes zero fields to their defaults. DefaultConfig returns the
// same defaults explicitly, for overriding individual fields.
type Config struct {
	// InitialItemCapacity hints how many items the first bucket should
	// be pre-allocated for. Advisory only; it does not bound the set.
	// Zero means the default of 500.
	InitialItemCapacity int

	// MaxBucketSize is the hard per-bucket capacity limit, enforced on
	// every bucket at rest. Zero means the default of 500.
	MaxBucketSize int

	// LockPolicy selects blocking or try-acquire locking. Zero value
	// is Blocking.
	LockPolicy LockPolicy
}

// DefaultConfig returns the configuration new sets use when none is
// supplied: initial_item_capacity=500, max_bucket_size=500, blocking
// locks.
func DefaultConfig() Config {
	return Config{
		InitialItemCapacity: defaultInitialItemCapacity,
		MaxBucketSize:       defaultMaxBucketSize,
		LockPolicy:          Blocking,
	}
}

// normalize fills zero fields with their defaults and reports
// ErrInvalidInput for negative capacities. A negative capacity is
// rejected; zero is treated as "use the default".
func (c Config) normalize() (Config, error) {
	if c.InitialItemCapacity < 0 || c.MaxBucketSize < 0 {
		return Config{}, ErrInvalidInput
	}
	if c.InitialItemCapacity == 0 {
		c.InitialItemCapacity = defaultInitialItemCapacity
	}
	if c.MaxBucketSize == 0 {
		c.MaxBucketSize = defaultMaxBucketSize
	}
	return c, nil
}
