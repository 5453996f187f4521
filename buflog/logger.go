// File: buflog/logger.go
// Package buflog core: the buffered destination.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog

import (
	"fmt"
	"os"

	"github.com/momentics/hioload-pool/api"
)

// ErrClosed reports use of a logger after Close.
var ErrClosed = fmt.Errorf("logger is closed")

// Logger writes records to one destination, buffering up to bufCap bytes
// in memory. A zero bufCap disables buffering; an empty path selects
// stderr. Not internally synchronized.
type Logger struct {
	path    string
	out     *os.File
	buf     []byte
	bufCap  int
	metrics *Metrics
	closed  bool
}

// New opens a logger without metrics. Path "" logs to stderr.
func New(path string, bufCap int) (*Logger, error) {
	return NewWithMetrics(path, bufCap, nil)
}

// NewWithMetrics opens a logger reporting into m. A nil m is valid.
func NewWithMetrics(path string, bufCap int, m *Metrics) (*Logger, error) {
	if bufCap < 0 {
		m.created(false)
		return nil, api.NewError(api.ErrConfig, "buffer capacity must not be negative").
			WithContext("buf_cap", bufCap)
	}
	l := &Logger{path: path, bufCap: bufCap, metrics: m}
	if bufCap > 0 {
		l.buf = make([]byte, 0, bufCap)
	}
	if path == "" {
		l.out = os.Stderr
	} else {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			m.created(false)
			return nil, fmt.Errorf("open log %q: %w", path, err)
		}
		l.out = f
		m.opened()
	}
	m.created(true)
	return l, nil
}

// Write buffers or emits one record. The record lands whole or not at all;
// a drop bumps the skip counters and reports false.
func (l *Logger) Write(record []byte) bool {
	if l.closed {
		l.metrics.skipped(len(record))
		return false
	}
	if l.buf != nil {
		if len(record) > l.bufCap-len(l.buf) {
			l.metrics.skipped(len(record))
			return false
		}
		l.buf = append(l.buf, record...)
		l.metrics.wrote(len(record))
		return true
	}
	n, err := l.out.Write(record)
	if err != nil || n < len(record) {
		l.metrics.skipped(len(record))
		return false
	}
	l.metrics.wrote(len(record))
	return true
}

// Flush drains the buffer to the destination.
func (l *Logger) Flush() error {
	if l.closed {
		return ErrClosed
	}
	err := l.drain()
	l.metrics.flushed(err)
	return err
}

func (l *Logger) drain() error {
	if len(l.buf) == 0 {
		return nil
	}
	n, err := l.out.Write(l.buf)
	if err != nil {
		// Keep the unwritten tail for the next attempt.
		l.buf = l.buf[:copy(l.buf, l.buf[n:])]
		return fmt.Errorf("flush log %q: %w", l.path, err)
	}
	l.buf = l.buf[:0]
	return nil
}

// Reopen rotates a file-backed logger: flush, close, optionally rename the
// live file to target, recreate the original path. Stderr loggers no-op.
func (l *Logger) Reopen(target string) error {
	if l.closed {
		return ErrClosed
	}
	if l.path == "" {
		return nil
	}
	if err := l.drain(); err != nil {
		return err
	}
	if err := l.out.Close(); err != nil {
		return fmt.Errorf("close log %q: %w", l.path, err)
	}
	if target != "" {
		if err := os.Rename(l.path, target); err != nil {
			return fmt.Errorf("rotate log %q: %w", l.path, err)
		}
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("reopen log %q: %w", l.path, err)
	}
	l.out = f
	l.metrics.opened()
	return nil
}

// Close flushes and releases the logger. Stderr itself stays open.
func (l *Logger) Close() error {
	if l.closed {
		return ErrClosed
	}
	err := l.drain()
	if l.path != "" {
		if cerr := l.out.Close(); err == nil {
			err = cerr
		}
	}
	l.closed = true
	l.metrics.destroyed()
	return err
}

// Path reports the destination path, "" for stderr.
func (l *Logger) Path() string { return l.path }

// Buffered reports how many bytes sit in the buffer right now.
func (l *Logger) Buffered() int { return len(l.buf) }

var _ api.LogSink = (*Logger)(nil)
