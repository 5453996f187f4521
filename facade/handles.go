// File: facade/handles.go
// Boundary surface of the pool library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the Registry, which exposes pools to boundary
// consumers as opaque numeric handles with status-code results. The
// registry owns one mutex per handle, so the unsynchronized pool core
// gets exactly the external mutual exclusion it requires, and free-list
// internals never cross the surface: only handles, buffers, statuses and
// stats snapshots do.

package facade

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/pool"
)

// Config holds pool parameters crossing the boundary. Callbacks arrive in
// function-pointer form; nil members are no-ops.
type Config struct {
	ObjSize  int          // Fixed object size in bytes
	Capacity int          // Maximum live objects, 0 = unbounded
	Init     func([]byte) // Runs once when an object is created
	Reset    func([]byte) // Runs on every return
	Destroy  func([]byte) // Runs once when an object is released
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		ObjSize:  4096, // one page per object
		Capacity: 1024, // bounded by default
	}
}

// Handle identifies a registered pool. Zero is never a valid handle.
type Handle uint64

type entry struct {
	mu sync.Mutex
	p  *pool.Pool
}

// Registry maps handles to pools. Multiple registries may coexist in one
// process; there is no package-level instance.
type Registry struct {
	mu     sync.RWMutex
	next   Handle
	pools  map[Handle]*entry
	probes *control.DebugProbes
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{pools: make(map[Handle]*entry)}
}

// NewRegistryWithProbes creates a registry that mirrors every live handle
// as a "pool.<n>" debug probe reporting its stats.
func NewRegistryWithProbes(dp *control.DebugProbes) *Registry {
	r := NewRegistry()
	r.probes = dp
	return r
}

func probeName(h Handle) string {
	return fmt.Sprintf("pool.%d", h)
}

// New creates a pool and registers it. A failed creation yields no handle
// and StatusNotConfigured.
func (r *Registry) New(cfg Config) (Handle, api.Status) {
	p, err := pool.New(pool.Config{
		ObjSize:  cfg.ObjSize,
		Capacity: cfg.Capacity,
		Lifecycle: api.LifecycleFuncs{
			InitFunc:    cfg.Init,
			ResetFunc:   cfg.Reset,
			DestroyFunc: cfg.Destroy,
		},
	})
	if err != nil {
		return 0, api.StatusOf(err)
	}

	r.mu.Lock()
	r.next++
	h := r.next
	r.pools[h] = &entry{p: p}
	r.mu.Unlock()

	if r.probes != nil {
		r.probes.RegisterProbe(probeName(h), func() any {
			st, _ := r.Stats(h)
			return st
		})
	}
	return h, api.StatusOK
}

func (r *Registry) lookup(h Handle) (*entry, bool) {
	r.mu.RLock()
	e, ok := r.pools[h]
	r.mu.RUnlock()
	return e, ok
}

// Prealloc tops up the pool behind h.
func (r *Registry) Prealloc(h Handle, n int) api.Status {
	e, ok := r.lookup(h)
	if !ok {
		return api.StatusNotConfigured
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return api.StatusOf(e.p.Prealloc(n))
}

// Borrow takes a buffer from the pool behind h.
func (r *Registry) Borrow(h Handle) (api.Buffer, api.Status) {
	e, ok := r.lookup(h)
	if !ok {
		return nil, api.StatusNotConfigured
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	buf, err := e.p.Borrow()
	if err != nil {
		return nil, api.StatusOf(err)
	}
	return buf, api.StatusOK
}

// Return hands a buffer back to the pool behind h.
func (r *Registry) Return(h Handle, b api.Buffer) api.Status {
	e, ok := r.lookup(h)
	if !ok {
		return api.StatusNotConfigured
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return api.StatusOf(e.p.Return(b))
}

// Stats snapshots the pool behind h.
func (r *Registry) Stats(h Handle) (api.PoolStats, api.Status) {
	e, ok := r.lookup(h)
	if !ok {
		return api.PoolStats{}, api.StatusNotConfigured
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.p.Stats(), api.StatusOK
}

// Destroy tears down the pool behind h and retires the handle. With
// outstanding borrows the teardown is refused and the handle survives.
func (r *Registry) Destroy(h Handle) api.Status {
	r.mu.Lock()
	e, ok := r.pools[h]
	if !ok {
		r.mu.Unlock()
		return api.StatusNotConfigured
	}
	e.mu.Lock()
	err := e.p.Close()
	e.mu.Unlock()
	if err != nil {
		r.mu.Unlock()
		return api.StatusOf(err)
	}
	delete(r.pools, h)
	r.mu.Unlock()

	if r.probes != nil {
		r.probes.RemoveProbe(probeName(h))
	}
	return api.StatusOK
}

// Size reports the number of live handles.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pools)
}
