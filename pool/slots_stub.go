//go:build !linux && !windows
// +build !linux,!windows

// File: pool/slots_stub.go
// Author: momentics <momentics@gmail.com>
//
// Heap backing store for platforms without a native path.

package pool

// newSlotAllocator returns the heap allocator on unsupported platforms.
func newSlotAllocator() SlotAllocator {
	return heapAllocator{}
}
