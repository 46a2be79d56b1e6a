package sortedset

import "errors"

var (
	// ErrUnsupportedType is returned when an Item is built from, or
	// contains, a value kind this package does not accept.
	ErrUnsupportedType = errors.New("sortedset: unsupported item type")

	// ErrOutOfBounds is returned by At when index >= Size and no
	// default value was supplied.
	ErrOutOfBounds = errors.New("sortedset: index out of bounds")

	// ErrNotPresent is returned by FindIndex and IndexRemove when the
	// item is not a member of the set.
	ErrNotPresent = errors.New("sortedset: item not present")

	// ErrInvalidInput is returned by FromProperEnumerable when the
	// input violates its precondition (strictly increasing, unique),
	// and by New/FromEnumerable/FromProperEnumerable when the
	// supplied Config is invalid.
	ErrInvalidInput = errors.New("sortedset: invalid input")

	// ErrContended is returned under the TryAcquire lock policy when
	// the lock is held by another caller at call time.
	ErrContended = errors.New("sortedset: lock contended")
)
