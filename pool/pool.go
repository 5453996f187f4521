// File: pool/pool.go
// Package pool implements the bounded buffer pool with lifecycle hooks.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"fmt"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-pool/api"
)

// Config describes a pool before construction.
type Config struct {
	// ObjSize is the fixed buffer length in bytes. Must be positive.
	ObjSize int

	// Capacity bounds how many buffers the pool may own at once.
	// Zero means unbounded; negative is a configuration error.
	Capacity int

	// Lifecycle receives Init/Reset/Destroy calls. Required; pass
	// api.LifecycleFuncs{} for all no-ops.
	Lifecycle api.Lifecycle

	// Slots overrides the backing-store allocator. Nil selects the
	// platform default.
	Slots SlotAllocator
}

type slotState uint8

const (
	slotFree slotState = iota
	slotBorrowed
	slotDead
)

// slot is one entry of the pool's buffer table. Entries are appended as
// buffers are created and never reused after destruction; the index is
// the stable identity a Buf token refers to.
type slot struct {
	data  []byte
	gen   uint32
	state slotState
}

// Pool recycles fixed-size buffers up to a capacity bound.
//
// Not internally synchronized. A Pool has a single owner; shared use goes
// through external mutual exclusion such as facade.Registry.
type Pool struct {
	size      int
	capacity  int
	unbounded bool
	life      api.Lifecycle
	alloc     SlotAllocator

	table  []slot
	freeq  *queue.Queue // slot indices, FIFO
	total  int
	closed bool

	allocs   uint64
	destroys uint64
	borrows  uint64
	returns  uint64
}

// New validates cfg and constructs an empty pool. No buffers are allocated
// until Prealloc or the first Borrow.
func New(cfg Config) (*Pool, error) {
	if cfg.ObjSize <= 0 {
		return nil, api.NewError(api.ErrConfig, "object size must be positive").
			WithContext("obj_size", cfg.ObjSize)
	}
	if cfg.Capacity < 0 {
		return nil, api.NewError(api.ErrConfig, "capacity must not be negative").
			WithContext("capacity", cfg.Capacity)
	}
	if cfg.Lifecycle == nil {
		return nil, api.NewError(api.ErrConfig, "lifecycle must be set")
	}
	alloc := cfg.Slots
	if alloc == nil {
		alloc = newSlotAllocator()
	}
	return &Pool{
		size:      cfg.ObjSize,
		capacity:  cfg.Capacity,
		unbounded: cfg.Capacity == 0,
		life:      cfg.Lifecycle,
		alloc:     alloc,
		freeq:     queue.New(),
	}, nil
}

// newSlot creates one buffer: backing store, Init hook, table entry.
// The caller decides whether the slot goes to the free queue or straight
// into a borrow.
func (p *Pool) newSlot() (int, error) {
	data, err := p.alloc.Alloc(p.size)
	if err != nil {
		return 0, fmt.Errorf("slot alloc: %w", err)
	}
	p.life.Init(data)
	p.table = append(p.table, slot{data: data, state: slotFree})
	p.total++
	p.allocs++
	return len(p.table) - 1, nil
}

// destroySlot runs the Destroy hook, releases the backing store and kills
// the table entry.
func (p *Pool) destroySlot(idx int) {
	st := &p.table[idx]
	p.life.Destroy(st.data)
	p.alloc.Free(st.data)
	st.data = nil
	st.state = slotDead
	st.gen++
	p.total--
	p.destroys++
}

// Prealloc tops the free queue up to n ready buffers. Creation stops early
// when a bounded pool reaches capacity; topping up past what Capacity
// allows is not an error.
func (p *Pool) Prealloc(n int) error {
	if p.closed {
		return api.ErrNotConfigured
	}
	if n < 0 {
		return api.NewError(api.ErrConfig, "prealloc count must not be negative").
			WithContext("n", n)
	}
	for p.freeq.Length() < n {
		if !p.unbounded && p.total >= p.capacity {
			break
		}
		idx, err := p.newSlot()
		if err != nil {
			return err
		}
		p.freeq.Add(idx)
	}
	return nil
}

// Borrow hands out one buffer. Recycled buffers come back as-is after the
// Reset that ran on their return; fresh buffers have seen exactly one Init.
// Never blocks: a bounded pool with every buffer out reports ErrExhausted.
func (p *Pool) Borrow() (api.Buffer, error) {
	if p.closed {
		return nil, api.ErrNotConfigured
	}
	var idx int
	if p.freeq.Length() > 0 {
		idx = p.freeq.Remove().(int)
	} else {
		if !p.unbounded && p.total >= p.capacity {
			return nil, api.ErrExhausted
		}
		var err error
		idx, err = p.newSlot()
		if err != nil {
			return nil, err
		}
	}
	st := &p.table[idx]
	st.state = slotBorrowed
	p.borrows++
	return &Buf{data: st.data, slot: idx, gen: st.gen, owner: p}, nil
}

// Return takes a buffer back. The token must be the live borrow of one of
// this pool's slots: foreign buffers, repeated returns and stale tokens
// from an earlier borrow of the same slot all fail with ErrDoubleReturn
// and change nothing.
func (p *Pool) Return(b api.Buffer) error {
	if p.closed {
		return api.ErrNotConfigured
	}
	tb, ok := b.(*Buf)
	if !ok || tb == nil || tb.owner != p {
		return api.ErrDoubleReturn
	}
	if tb.slot < 0 || tb.slot >= len(p.table) {
		return api.ErrDoubleReturn
	}
	st := &p.table[tb.slot]
	if st.state != slotBorrowed || st.gen != tb.gen {
		return api.ErrDoubleReturn
	}
	p.returns++
	st.gen++
	if !p.unbounded && p.freeq.Length() >= p.capacity {
		// Free queue already holds a full complement; evict instead of
		// parking. Not reachable while the capacity invariant holds.
		p.destroySlot(tb.slot)
		return nil
	}
	p.life.Reset(st.data)
	st.state = slotFree
	p.freeq.Add(tb.slot)
	return nil
}

// Close tears the pool down, destroying every parked buffer. Refused with
// ErrOutstandingBorrows while any borrow is live; the pool stays usable
// after a refused Close. A second Close reports ErrNotConfigured.
func (p *Pool) Close() error {
	if p.closed {
		return api.ErrNotConfigured
	}
	if borrowed := p.total - p.freeq.Length(); borrowed > 0 {
		return api.NewError(api.ErrOutstandingBorrows, "cannot close pool").
			WithContext("borrowed", borrowed)
	}
	for p.freeq.Length() > 0 {
		p.destroySlot(p.freeq.Remove().(int))
	}
	p.closed = true
	return nil
}

// Stats snapshots the accounting counters.
func (p *Pool) Stats() api.PoolStats {
	free := p.freeq.Length()
	return api.PoolStats{
		Total:    p.total,
		Free:     free,
		Borrowed: p.total - free,
		Capacity: p.capacity,
		Allocs:   p.allocs,
		Destroys: p.destroys,
		Borrows:  p.borrows,
		Returns:  p.returns,
	}
}

var _ api.Pool = (*Pool)(nil)
