// Package api
// Author: momentics <momentics@gmail.com>
//
// Lifecycle callback set invoked by pools at object transition points.

package api

// Lifecycle is the closed set of caller-supplied operations a pool runs
// against the raw bytes of a pooled object. Implementations always see the
// opaque pointer+length form; the pool itself stays ignorant of object
// layout, so the pool and its consumers may live in separate compilation
// units.
//
// Init runs exactly once per object, right after its region is allocated
// and before the object is handed out for the first time. Reset runs every
// time an object comes back to the pool, restoring a reusable canonical
// state without releasing sub-resources Init acquired. Destroy runs exactly
// once per object, when the pool releases it for good (teardown or overflow
// eviction), and tears down whatever Init and Reset built up.
//
// All three must be infallible with respect to pool accounting. An Init
// whose resource acquisition can fail must acquire those resources before
// objects enter the pool, not mid-protocol.
type Lifecycle interface {
	Init(buf []byte)
	Reset(buf []byte)
	Destroy(buf []byte)
}

// LifecycleFuncs adapts bare functions to Lifecycle. Nil members act as
// no-ops, which keeps plain value-only objects cheap to pool.
type LifecycleFuncs struct {
	InitFunc    func(buf []byte)
	ResetFunc   func(buf []byte)
	DestroyFunc func(buf []byte)
}

func (f LifecycleFuncs) Init(buf []byte) {
	if f.InitFunc != nil {
		f.InitFunc(buf)
	}
}

func (f LifecycleFuncs) Reset(buf []byte) {
	if f.ResetFunc != nil {
		f.ResetFunc(buf)
	}
}

func (f LifecycleFuncs) Destroy(buf []byte) {
	if f.DestroyFunc != nil {
		f.DestroyFunc(buf)
	}
}

// Ensure compile-time compliance.
var _ Lifecycle = LifecycleFuncs{}
