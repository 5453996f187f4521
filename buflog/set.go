// File: buflog/set.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog

import (
	"path/filepath"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// SetConfig describes a family of per-worker loggers. Members share one
// directory, base filename and metrics block; worker "w3" with basename
// "cache" logs to dir/cache.w3.log.
type SetConfig struct {
	Dir      string
	Basename string
	BufCap   int
	Metrics  *Metrics
}

// Set creates loggers lazily per worker name. Safe for concurrent use.
type Set struct {
	cfg     SetConfig
	mu      sync.Mutex
	members map[string]*Logger
}

// NewSet validates cfg and returns an empty set.
func NewSet(cfg SetConfig) (*Set, error) {
	if cfg.Basename == "" {
		return nil, api.NewError(api.ErrConfig, "set basename must be set")
	}
	if cfg.BufCap < 0 {
		return nil, api.NewError(api.ErrConfig, "buffer capacity must not be negative").
			WithContext("buf_cap", cfg.BufCap)
	}
	return &Set{cfg: cfg, members: make(map[string]*Logger)}, nil
}

// Get returns the worker's logger, creating it on first use.
func (s *Set) Get(name string) (*Logger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.members[name]; ok {
		return l, nil
	}
	path := filepath.Join(s.cfg.Dir, s.cfg.Basename+"."+name+".log")
	l, err := NewWithMetrics(path, s.cfg.BufCap, s.cfg.Metrics)
	if err != nil {
		return nil, err
	}
	s.members[name] = l
	return l, nil
}

// Flush drains every member, reporting the first failure.
func (s *Set) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var first error
	for _, l := range s.members {
		if err := l.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Close flushes and closes every member and empties the set.
func (s *Set) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var first error
	for _, l := range s.members {
		if err := l.Close(); err != nil && first == nil {
			first = err
		}
	}
	s.members = make(map[string]*Logger)
	return first
}

// Size reports how many workers own a logger right now.
func (s *Set) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}
