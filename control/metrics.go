// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Named-value metrics registry. Pools and log sinks publish snapshots
// here; probes and operators read them back as one flat map.

package control

import (
	"fmt"
	"sync"
	"time"

	"github.com/momentics/hioload-pool/api"
)

// MetricsRegistry collects the latest value per metric name. Component
// snapshots land under a dotted prefix, so one registry can carry any
// number of pools and loggers side by side.
type MetricsRegistry struct {
	mu      sync.RWMutex
	values  map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{values: make(map[string]any)}
}

// Set stores one bare metric.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.values[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Publish merges a component snapshot under prefix: a logger snapshot
// {"log_skip": 3} published as "applog" lands at "applog.log_skip".
func (mr *MetricsRegistry) Publish(prefix string, snapshot map[string]any) {
	mr.mu.Lock()
	for k, v := range snapshot {
		mr.values[prefix+"."+k] = v
	}
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// PublishPoolStats flattens a pool accounting snapshot under prefix.
func (mr *MetricsRegistry) PublishPoolStats(prefix string, st api.PoolStats) {
	mr.Publish(prefix, map[string]any{
		"total":    st.Total,
		"free":     st.Free,
		"borrowed": st.Borrowed,
		"capacity": st.Capacity,
		"allocs":   st.Allocs,
		"destroys": st.Destroys,
		"borrows":  st.Borrows,
		"returns":  st.Returns,
	})
}

// GetSnapshot copies the current values.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	snap := make(map[string]any, len(mr.values))
	for k, v := range mr.values {
		snap[k] = v
	}
	return snap
}

// UpdatedAt reports when any metric last changed.
func (mr *MetricsRegistry) UpdatedAt() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// String renders a compact summary for debug output.
func (mr *MetricsRegistry) String() string {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return fmt.Sprintf("metrics(%d keys, updated %s)", len(mr.values),
		mr.updated.Format(time.RFC3339))
}
