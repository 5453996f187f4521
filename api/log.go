// Package api
// Author: momentics <momentics@gmail.com>
//
// Buffered log sink contract.

package api

// LogSink is a buffered, drop-on-full log destination.
//
// Write either accepts the whole record or drops the whole record; partial
// writes never happen. Dropping is not an error, it is backpressure: the
// sink counts what it skipped and keeps going. Implementations are not
// synchronized unless stated otherwise.
type LogSink interface {
	// Write buffers one record. Reports false when the record was dropped
	// because the buffer lacked room for all of it.
	Write(record []byte) bool

	// Flush pushes buffered bytes to the destination.
	Flush() error

	// Reopen rotates the destination. With a non-empty target the current
	// file is first renamed to target, then the original path is recreated.
	Reopen(target string) error

	// Close flushes and releases the sink. The sink is unusable afterwards.
	Close() error
}
