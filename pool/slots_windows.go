//go:build windows
// +build windows

// File: pool/slots_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows backing store via VirtualAlloc/VirtualFree, heap below the
// threshold and as fallback.

package pool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

type virtualAllocator struct {
	// Bases handed out by VirtualAlloc. Heap-fallback slices are absent,
	// so Free never hands a Go pointer to VirtualFree.
	owned map[*byte]struct{}
}

func (a *virtualAllocator) Alloc(size int) ([]byte, error) {
	if size < mapThreshold {
		return make([]byte, size), nil
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT,
		windows.PAGE_READWRITE)
	if err != nil || addr == 0 {
		return make([]byte, size), nil
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	a.owned[&data[0]] = struct{}{}
	return data, nil
}

func (a *virtualAllocator) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}
	base := &buf[0]
	if _, ok := a.owned[base]; !ok {
		return
	}
	delete(a.owned, base)
	_ = windows.VirtualFree(uintptr(unsafe.Pointer(base)), 0, windows.MEM_RELEASE)
}

// newSlotAllocator returns the backing-store allocator for Windows.
func newSlotAllocator() SlotAllocator {
	return &virtualAllocator{owned: make(map[*byte]struct{})}
}
