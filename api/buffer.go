// Package api
// Author: momentics
//
// Opaque buffer contract for pooled, fixed-size memory regions.
//
// A pooled buffer is a type-erased byte region: the pool knows its length
// and nothing else. Interior layout belongs entirely to the borrowing side.

package api

// Buffer is the unit of recycling: a fixed-length byte region handed out
// by a pool and eventually handed back unchanged in size.
//
// Ownership transfers to the caller on borrow and back to the pool on
// return. After return the caller must treat the buffer as invalid; the
// pool never touches the region while it is borrowed.
type Buffer interface {
	// Bytes exposes the whole region as a mutable slice. The slice stays
	// valid only until the buffer is returned.
	Bytes() []byte

	// Len returns the region length in bytes, fixed for the pool lifetime.
	Len() int
}
