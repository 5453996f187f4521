// File: buflog/leveled.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-pool/api"
)

// Leveled is the formatting frontend over a sink. Lines carry a UTC
// timestamp with microseconds, the padded level name and a module tag:
//
//	2026-08-22 14:03:55.001204 ERROR [recycler] pool exhausted
//
// The level filter is atomic so a control-plane reload may flip it while
// workers keep logging.
type Leveled struct {
	sink   api.LogSink
	module string
	level  atomic.Uint32
}

// NewLeveled wraps sink with a level filter and module tag.
func NewLeveled(sink api.LogSink, module string, level Level) *Leveled {
	l := &Leveled{sink: sink, module: module}
	l.level.Store(uint32(level))
	return l
}

// Level reports the current filter.
func (l *Leveled) Level() Level { return Level(l.level.Load()) }

// SetLevel replaces the filter.
func (l *Leveled) SetLevel(level Level) { l.level.Store(uint32(level)) }

// Enabled reports whether a record at lv passes the filter.
func (l *Leveled) Enabled(lv Level) bool { return lv <= l.Level() }

func (l *Leveled) emit(lv Level, format string, args ...any) bool {
	if !l.Enabled(lv) {
		return false
	}
	now := time.Now().UTC()
	line := fmt.Sprintf("%s.%06d %-5s [%s] %s\n",
		now.Format("2006-01-02 15:04:05"),
		now.Nanosecond()/1000,
		lv.String(),
		l.module,
		fmt.Sprintf(format, args...))
	return l.sink.Write([]byte(line))
}

// Errorf logs at LevelError.
func (l *Leveled) Errorf(format string, args ...any) { l.emit(LevelError, format, args...) }

// Warnf logs at LevelWarn.
func (l *Leveled) Warnf(format string, args ...any) { l.emit(LevelWarn, format, args...) }

// Infof logs at LevelInfo.
func (l *Leveled) Infof(format string, args ...any) { l.emit(LevelInfo, format, args...) }

// Debugf logs at LevelDebug.
func (l *Leveled) Debugf(format string, args ...any) { l.emit(LevelDebug, format, args...) }

// Tracef logs at LevelTrace.
func (l *Leveled) Tracef(format string, args ...any) { l.emit(LevelTrace, format, args...) }
