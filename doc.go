// Package sortedset implements an in-memory, bucketed, ordered set of
// heterogeneous comparable values. It maintains sorted order and
// deduplication while supporting random access by rank, slicing, and
// index reporting on every mutation, the shape needed by leaderboards,
// ranked indexes, and similar workloads where both order-by-value and
// order-by-position must hold at once.
//
// A Set is a single mutable instance guarded by one lock, safely shared
// by many concurrent callers (see Config.LockPolicy). The underlying
// engine never exposes its mutable state; callers only ever see copies
// of Items returned from its methods.
package sortedset
