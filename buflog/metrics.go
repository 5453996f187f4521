// File: buflog/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog

import "sync/atomic"

// Metrics is the counter block loggers report into. The caller owns the
// block and may share one across any number of loggers; all methods are
// nil-receiver safe so metrics stay strictly optional.
type Metrics struct {
	Create    atomic.Uint64
	CreateEx  atomic.Uint64
	Destroy   atomic.Uint64
	Curr      atomic.Int64
	Open      atomic.Uint64
	Write     atomic.Uint64
	WriteByte atomic.Uint64
	Skip      atomic.Uint64
	SkipByte  atomic.Uint64
	Flush     atomic.Uint64
	FlushEx   atomic.Uint64
}

// Snapshot copies the counters into a flat map for control probes.
func (m *Metrics) Snapshot() map[string]any {
	if m == nil {
		return nil
	}
	return map[string]any{
		"log_create":     m.Create.Load(),
		"log_create_ex":  m.CreateEx.Load(),
		"log_destroy":    m.Destroy.Load(),
		"log_curr":       m.Curr.Load(),
		"log_open":       m.Open.Load(),
		"log_write":      m.Write.Load(),
		"log_write_byte": m.WriteByte.Load(),
		"log_skip":       m.Skip.Load(),
		"log_skip_byte":  m.SkipByte.Load(),
		"log_flush":      m.Flush.Load(),
		"log_flush_ex":   m.FlushEx.Load(),
	}
}

func (m *Metrics) created(ok bool) {
	if m == nil {
		return
	}
	if !ok {
		m.CreateEx.Add(1)
		return
	}
	m.Create.Add(1)
	m.Curr.Add(1)
}

func (m *Metrics) destroyed() {
	if m == nil {
		return
	}
	m.Destroy.Add(1)
	m.Curr.Add(-1)
}

func (m *Metrics) opened() {
	if m == nil {
		return
	}
	m.Open.Add(1)
}

func (m *Metrics) wrote(n int) {
	if m == nil {
		return
	}
	m.Write.Add(1)
	m.WriteByte.Add(uint64(n))
}

func (m *Metrics) skipped(n int) {
	if m == nil {
		return
	}
	m.Skip.Add(1)
	m.SkipByte.Add(uint64(n))
}

func (m *Metrics) flushed(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.FlushEx.Add(1)
		return
	}
	m.Flush.Add(1)
}
