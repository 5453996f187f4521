// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Abstract pooling contract: bounded recycling of fixed-size opaque buffers.

package api

// Pool recycles fixed-size opaque buffers through borrow/return cycles,
// replacing allocate/initialize/destroy churn for short-lived objects.
//
// A Pool is not internally synchronized. It assumes a single owner, or
// external mutual exclusion around every call (one lock per pool, or one
// pool per goroutine). No operation blocks: exhaustion surfaces as
// ErrExhausted immediately, and callers needing backpressure retry or
// queue above the pool.
type Pool interface {
	// Borrow takes a buffer off the free list, or allocates and
	// initializes a fresh one while capacity allows.
	Borrow() (Buffer, error)

	// Return hands a borrowed buffer back for reuse. The caller's
	// reference is invalid afterwards.
	Return(b Buffer) error

	// Prealloc tops the free list up to n initialized buffers.
	Prealloc(n int) error

	// Stats exposes accounting counters for observability.
	Stats() PoolStats

	// Close destroys every pooled buffer and invalidates the pool.
	// It refuses while borrows are outstanding.
	Close() error
}

// PoolStats aggregates pool accounting. Counters are point-in-time
// snapshots taken under the caller's serialization of the pool.
type PoolStats struct {
	Total    int // buffers allocated and not yet destroyed (borrowed + free)
	Free     int // buffers currently in the free list
	Borrowed int // Total - Free
	Capacity int // configured bound; 0 means unbounded

	Allocs   uint64 // cumulative buffer allocations
	Destroys uint64 // cumulative buffer destructions
	Borrows  uint64 // cumulative successful borrows
	Returns  uint64 // cumulative accepted returns
}
