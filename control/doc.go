// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics, configuration control, and debug introspection layer
// for pools and log sinks.
//
// Provides concurrent-safe state handling primitives including:
//   - Immutable snapshot config reads and atomic updates
//   - Runtime observers for hot-reload of values like the log level
//   - Metrics publication from pool stats and logger counters
//   - State export, debug hooks, and probe registration
package control
