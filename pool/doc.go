// File: pool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package pool implements a bounded pool of fixed-size, type-erased
// buffers with caller-supplied lifecycle hooks.
//
// A Pool owns at most Capacity buffers at any moment. Buffers are created
// lazily on demand, parked on a free queue when returned, and recycled on
// the next borrow. Creation runs the Init hook once per buffer, every
// return runs Reset, and teardown runs Destroy.
//
// The pool performs no internal locking. Callers that share a Pool across
// goroutines serialize access themselves; facade.Registry packages that as
// one mutex per pool handle.
package pool
