// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Bundles the control-plane primitives behind the api.Control contract.

package adapters

import (
	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
)

// ControlAdapter joins a config store, a metrics registry and a probe
// registry into one api.Control surface. The underlying stores stay
// reachable through accessors so pools and loggers can publish directly.
type ControlAdapter struct {
	store   *control.ConfigStore
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
}

// NewControlAdapter builds an adapter over fresh control primitives.
func NewControlAdapter() *ControlAdapter {
	return &ControlAdapter{
		store:   control.NewConfigStore(),
		metrics: control.NewMetricsRegistry(),
		probes:  control.NewDebugProbes(),
	}
}

// GetConfig snapshots the live configuration.
func (c *ControlAdapter) GetConfig() map[string]any {
	return c.store.GetSnapshot()
}

// SetConfig merges cfg and dispatches reload listeners before returning.
func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.store.SetConfig(cfg)
	return nil
}

// Stats merges published metrics with live probe output; probe keys carry
// a "debug." prefix so the two namespaces cannot collide.
func (c *ControlAdapter) Stats() map[string]any {
	out := c.metrics.GetSnapshot()
	for k, v := range c.probes.DumpState() {
		out["debug."+k] = v
	}
	return out
}

// OnReload registers a config-change listener.
func (c *ControlAdapter) OnReload(fn func()) {
	c.store.OnReload(fn)
}

// RegisterDebugProbe registers a named snapshot closure.
func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.probes.RegisterProbe(name, fn)
}

// SetMetric publishes one bare metric value.
func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

// Metrics exposes the underlying registry for bulk publication.
func (c *ControlAdapter) Metrics() *control.MetricsRegistry { return c.metrics }

// Probes exposes the underlying probe registry, e.g. for facade.Registry.
func (c *ControlAdapter) Probes() *control.DebugProbes { return c.probes }

var _ api.Control = (*ControlAdapter)(nil)
