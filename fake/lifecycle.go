// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the core interfaces.

package fake

import "github.com/momentics/hioload-pool/api"

// Lifecycle is a counting implementation of api.Lifecycle for testing.
// Counters are plain ints; tests drive the pool from a single goroutine.
type Lifecycle struct {
	Inits    int
	Resets   int
	Destroys int

	initsPer map[*byte]int
}

// NewLifecycle creates a counting lifecycle.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{initsPer: make(map[*byte]int)}
}

// Init implements api.Lifecycle.
func (l *Lifecycle) Init(buf []byte) {
	l.Inits++
	if len(buf) > 0 {
		l.initsPer[&buf[0]]++
	}
}

// Reset implements api.Lifecycle.
func (l *Lifecycle) Reset(buf []byte) {
	l.Resets++
}

// Destroy implements api.Lifecycle.
func (l *Lifecycle) Destroy(buf []byte) {
	l.Destroys++
}

// InitsFor reports how many times Init ran for this exact buffer region.
func (l *Lifecycle) InitsFor(buf []byte) int {
	if len(buf) == 0 {
		return 0
	}
	return l.initsPer[&buf[0]]
}

var _ api.Lifecycle = (*Lifecycle)(nil)
