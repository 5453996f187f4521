// File: buflog/level.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog

import (
	"fmt"
	"strings"

	"github.com/momentics/hioload-pool/api"
)

// Level orders log severities. Numeric values are stable for boundary use;
// lower is more severe.
type Level uint32

const (
	LevelError Level = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// String implements fmt.Stringer.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("level(%d)", uint32(l))
	}
}

// ParseLevel resolves a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	case "TRACE":
		return LevelTrace, nil
	default:
		return 0, api.NewError(api.ErrConfig, "unknown log level").WithContext("level", s)
	}
}
