// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake log sink capturing records in memory.

package fake

import (
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// Sink is a fake implementation of api.LogSink for testing.
type Sink struct {
	mu       sync.Mutex
	records  [][]byte
	rejected int
	flushes  int
	reopens  []string
	closed   bool

	rejectWrites bool
	flushError   error
}

// NewSink creates a new fake sink that accepts everything.
func NewSink() *Sink {
	return &Sink{}
}

// Write implements api.LogSink.Write.
func (s *Sink) Write(record []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.rejectWrites {
		s.rejected++
		return false
	}
	cp := make([]byte, len(record))
	copy(cp, record)
	s.records = append(s.records, cp)
	return true
}

// Flush implements api.LogSink.Flush.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushes++
	return s.flushError
}

// Reopen implements api.LogSink.Reopen.
func (s *Sink) Reopen(target string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reopens = append(s.reopens, target)
	return nil
}

// Close implements api.LogSink.Close.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// SetRejectWrites makes every subsequent Write drop its record.
func (s *Sink) SetRejectWrites(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectWrites = reject
}

// SetFlushError configures the sink to return an error on Flush.
func (s *Sink) SetFlushError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushError = err
}

// Lines returns the captured records as strings.
func (s *Sink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.records))
	for i, r := range s.records {
		out[i] = string(r)
	}
	return out
}

// Rejected reports how many writes were dropped.
func (s *Sink) Rejected() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rejected
}

// Flushes reports how many Flush calls arrived.
func (s *Sink) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

// Reopens returns the rotation targets seen so far.
func (s *Sink) Reopens() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.reopens))
	copy(out, s.reopens)
	return out
}

var _ api.LogSink = (*Sink)(nil)
