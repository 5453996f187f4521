// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Named debug probes: cheap snapshot closures queried on demand.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// DebugProbes maps probe names to snapshot closures. The facade registers
// one probe per live pool handle; loggers register their counter blocks.
type DebugProbes struct {
	mu    sync.RWMutex
	hooks map[string]func() any
}

// NewDebugProbes creates an empty probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{hooks: make(map[string]func() any)}
}

// RegisterProbe inserts or replaces a named probe.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.hooks[name] = fn
}

// RemoveProbe drops a probe, e.g. when its pool handle is destroyed.
func (dp *DebugProbes) RemoveProbe(name string) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	delete(dp.hooks, name)
}

// Names lists registered probes in stable order.
func (dp *DebugProbes) Names() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.hooks))
	for k := range dp.hooks {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState runs every probe and collects the outputs by name. Probes run
// while the registry lock is held read-side; they must not register or
// remove probes themselves.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any, len(dp.hooks))
	for k, fn := range dp.hooks {
		out[k] = fn()
	}
	return out
}

var _ api.Debug = (*DebugProbes)(nil)
