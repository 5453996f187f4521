// File: pool/slots.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral backing-store contract for pool buffers. Concrete
// allocators are selected through platform-specific factories in
// separate files.

package pool

// SlotAllocator provides and releases the backing store of pool buffers.
// Alloc returns a slice of exactly size bytes; Free takes back a slice
// previously produced by Alloc on the same allocator.
type SlotAllocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// heapAllocator serves every request from the Go heap.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) ([]byte, error) { return make([]byte, size), nil }

func (heapAllocator) Free([]byte) {}

// NewHeapAllocator returns a plain heap allocator. Useful as a Config.Slots
// override when deterministic Go-heap backing is wanted regardless of
// platform.
func NewHeapAllocator() SlotAllocator { return heapAllocator{} }

// mapThreshold is the object size from which platform allocators switch
// from the heap to page-granular OS mappings.
const mapThreshold = 64 << 10
