// File: buflog/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package buflog implements a buffered, drop-on-full file logger.
//
// A Logger owns one destination, either a file or stderr, and an optional
// in-memory buffer. Buffered records accumulate until Flush; a record that
// does not fit the remaining space is dropped whole and counted, never
// split. Rotation goes through Reopen, which renames the live file aside
// and recreates the path.
//
// Leveled is the formatting frontend: timestamped, level-filtered lines
// tagged with a module name. Set fans a common configuration out into one
// logger per worker.
//
// Loggers are single-owner like pool.Pool; Set and Metrics are safe for
// concurrent use.
package buflog
