// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Dynamic key/value configuration with hot-reload listeners. Keys are flat
// dotted strings ("log.level", "pool.capacity"); values are scalars.

package control

import "sync"

// ConfigStore holds live configuration for pools and log sinks. Reads take
// a single key or a snapshot; writes merge and notify reload listeners.
type ConfigStore struct {
	mu        sync.RWMutex
	values    map[string]any
	listeners []func()
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

// Get reads one key.
func (cs *ConfigStore) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	v, ok := cs.values[key]
	return v, ok
}

// GetSnapshot copies the whole store.
func (cs *ConfigStore) GetSnapshot() map[string]any {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	snap := make(map[string]any, len(cs.values))
	for k, v := range cs.values {
		snap[k] = v
	}
	return snap
}

// SetConfig merges newCfg over the current values and runs the reload
// listeners. Listeners run synchronously on the calling goroutine after
// the store is unlocked, so they may read the store freely; SetConfig
// returns once every listener has seen the update.
func (cs *ConfigStore) SetConfig(newCfg map[string]any) {
	cs.mu.Lock()
	for k, v := range newCfg {
		cs.values[k] = v
	}
	listeners := make([]func(), len(cs.listeners))
	copy(listeners, cs.listeners)
	cs.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// OnReload registers fn to run after every SetConfig.
func (cs *ConfigStore) OnReload(fn func()) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.listeners = append(cs.listeners, fn)
}
