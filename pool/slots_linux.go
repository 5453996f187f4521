//go:build linux
// +build linux

// File: pool/slots_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux backing store: large objects come from anonymous private mmap,
// small ones from the Go heap. Fallback to the heap if mmap fails.

package pool

import (
	"golang.org/x/sys/unix"
)

type mmapAllocator struct{}

func (mmapAllocator) Alloc(size int) ([]byte, error) {
	if size < mapThreshold {
		return make([]byte, size), nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size), nil
	}
	return data, nil
}

func (mmapAllocator) Free(buf []byte) {
	if len(buf) < mapThreshold {
		return
	}
	// Heap-fallback slices miss the mapping registry and come back EINVAL.
	_ = unix.Munmap(buf)
}

// newSlotAllocator returns the backing-store allocator for Linux.
func newSlotAllocator() SlotAllocator {
	return mmapAllocator{}
}
