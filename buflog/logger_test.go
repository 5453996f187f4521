// File: buflog/logger_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buflog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/buflog"
)

func assertFileContents(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != want {
		t.Fatalf("Expected file contents %q, got %q", want, string(data))
	}
}

// TestLogger_UnbufferedWrite checks that records land in the file at once
// when buffering is off.
func TestLogger_UnbufferedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1")
	l, err := buflog.New(path, 0)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !l.Write([]byte("foo bar baz")) {
		t.Fatal("Expected write to be accepted")
	}
	assertFileContents(t, path, "foo bar baz")

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	assertFileContents(t, path, "foo bar baz")
}

// TestLogger_BufferedWrite checks that records stay in memory until close.
func TestLogger_BufferedWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1")
	l, err := buflog.New(path, 100)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !l.Write([]byte("foo bar baz")) {
		t.Fatal("Expected write to be accepted")
	}
	assertFileContents(t, path, "")
	if l.Buffered() != len("foo bar baz") {
		t.Errorf("Expected %d buffered bytes, got %d", len("foo bar baz"), l.Buffered())
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	assertFileContents(t, path, "foo bar baz")
}

// TestLogger_FlushDrains checks explicit flushing.
func TestLogger_FlushDrains(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1")
	m := &buflog.Metrics{}
	l, err := buflog.NewWithMetrics(path, 64, m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Write([]byte("abc"))
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	assertFileContents(t, path, "abc")
	if l.Buffered() != 0 {
		t.Errorf("Expected empty buffer after flush, got %d bytes", l.Buffered())
	}
	if m.Flush.Load() != 1 {
		t.Errorf("Expected 1 flush counted, got %d", m.Flush.Load())
	}
	_ = l.Close()
}

// TestLogger_ReopenSamePath checks reopen without a rotation target.
func TestLogger_ReopenSamePath(t *testing.T) {
	for _, bufCap := range []int{0, 100} {
		path := filepath.Join(t.TempDir(), "1")
		l, err := buflog.New(path, bufCap)
		if err != nil {
			t.Fatalf("New(bufCap=%d) failed: %v", bufCap, err)
		}
		if err := l.Reopen(""); err != nil {
			t.Fatalf("Reopen failed: %v", err)
		}
		if !l.Write([]byte("foo bar baz")) {
			t.Fatal("Expected write after reopen to be accepted")
		}
		if err := l.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		assertFileContents(t, path, "foo bar baz")
	}
}

// TestLogger_ReopenRotates checks the rename-based rotation protocol.
func TestLogger_ReopenRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.log")
	rotated := filepath.Join(dir, "live.log.1")

	l, err := buflog.New(path, 32)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Write([]byte("one"))
	if err := l.Reopen(rotated); err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	assertFileContents(t, rotated, "one")
	assertFileContents(t, path, "")

	l.Write([]byte("two"))
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	assertFileContents(t, path, "two")
	assertFileContents(t, rotated, "one")
}

// TestLogger_SkipAccounting checks whole-record drops and their counters.
func TestLogger_SkipAccounting(t *testing.T) {
	m := &buflog.Metrics{}
	l, err := buflog.NewWithMetrics("", 5, m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.Skip.Load() != 0 || m.SkipByte.Load() != 0 {
		t.Fatal("Expected zero skip counters on a fresh logger")
	}

	// Record larger than the whole buffer: dropped even though empty.
	if l.Write([]byte("foo bar baz")) {
		t.Fatal("Expected oversized record to be dropped")
	}
	if m.Skip.Load() != 1 || m.SkipByte.Load() != uint64(len("foo bar baz")) {
		t.Errorf("Expected skip=1 skipByte=%d, got %d/%d",
			len("foo bar baz"), m.Skip.Load(), m.SkipByte.Load())
	}

	// A fitting record is still accepted afterwards.
	if !l.Write([]byte("foo")) {
		t.Fatal("Expected small record to be accepted")
	}
	if m.Write.Load() != 1 || m.WriteByte.Load() != 3 {
		t.Errorf("Expected write=1 writeByte=3, got %d/%d",
			m.Write.Load(), m.WriteByte.Load())
	}
	_ = l.Close()
}

// TestLogger_WholeRecordIntegrity checks that a partially fitting record
// never splits across a flush boundary.
func TestLogger_WholeRecordIntegrity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1")
	l, err := buflog.New(path, 10)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !l.Write([]byte("AAAAAA")) {
		t.Fatal("Expected first record to fit")
	}
	if l.Write([]byte("BBBBBB")) {
		t.Fatal("Expected second record to be dropped, only 4 bytes left")
	}
	if err := l.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if !l.Write([]byte("CCCCCC")) {
		t.Fatal("Expected record to fit after flush")
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	assertFileContents(t, path, "AAAAAACCCCCC")
}

// TestLogger_CreateMetrics checks the create/open/curr/destroy counters for
// file and stderr destinations.
func TestLogger_CreateMetrics(t *testing.T) {
	// File-backed: open is counted.
	m := &buflog.Metrics{}
	path := filepath.Join(t.TempDir(), "1")
	l, err := buflog.NewWithMetrics(path, 0, m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if m.Create.Load() != 1 || m.Open.Load() != 1 || m.Curr.Load() != 1 {
		t.Errorf("Expected create=1 open=1 curr=1, got %d/%d/%d",
			m.Create.Load(), m.Open.Load(), m.Curr.Load())
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if m.Destroy.Load() != 1 || m.Curr.Load() != 0 {
		t.Errorf("Expected destroy=1 curr=0, got %d/%d", m.Destroy.Load(), m.Curr.Load())
	}

	// Stderr-backed: no file open.
	m = &buflog.Metrics{}
	l, err = buflog.NewWithMetrics("", 0, m)
	if err != nil {
		t.Fatalf("New stderr failed: %v", err)
	}
	if m.Open.Load() != 0 || m.Create.Load() != 1 {
		t.Errorf("Expected open=0 create=1 for stderr, got %d/%d",
			m.Open.Load(), m.Create.Load())
	}
	_ = l.Close()
}

// TestLogger_WriteMetrics checks the write counter across the four
// destination/buffering combinations.
func TestLogger_WriteMetrics(t *testing.T) {
	for _, tc := range []struct {
		file   bool
		bufCap int
	}{
		{true, 10}, {false, 10}, {true, 0}, {false, 0},
	} {
		m := &buflog.Metrics{}
		path := ""
		if tc.file {
			path = filepath.Join(t.TempDir(), "1")
		}
		l, err := buflog.NewWithMetrics(path, tc.bufCap, m)
		if err != nil {
			t.Fatalf("New(file=%v bufCap=%d) failed: %v", tc.file, tc.bufCap, err)
		}
		if !l.Write([]byte("foo")) {
			t.Fatalf("Write(file=%v bufCap=%d) rejected", tc.file, tc.bufCap)
		}
		if m.Write.Load() != 1 {
			t.Errorf("Expected write=1 for file=%v bufCap=%d, got %d",
				tc.file, tc.bufCap, m.Write.Load())
		}
		_ = l.Close()
	}
}

// TestLogger_ClosedBehavior checks post-close semantics.
func TestLogger_ClosedBehavior(t *testing.T) {
	m := &buflog.Metrics{}
	l, err := buflog.NewWithMetrics("", 8, m)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Close(); !errors.Is(err, buflog.ErrClosed) {
		t.Errorf("Expected ErrClosed on second close, got %v", err)
	}
	if l.Write([]byte("x")) {
		t.Error("Expected write on closed logger to be dropped")
	}
	if m.Skip.Load() != 1 {
		t.Errorf("Expected dropped write to be counted, got skip=%d", m.Skip.Load())
	}
	if err := l.Flush(); !errors.Is(err, buflog.ErrClosed) {
		t.Errorf("Expected ErrClosed on flush, got %v", err)
	}
	if err := l.Reopen(""); !errors.Is(err, buflog.ErrClosed) {
		t.Errorf("Expected ErrClosed on reopen, got %v", err)
	}
}

// TestLogger_NegativeBufCap checks constructor validation.
func TestLogger_NegativeBufCap(t *testing.T) {
	m := &buflog.Metrics{}
	l, err := buflog.NewWithMetrics("", -1, m)
	if l != nil || err == nil {
		t.Fatalf("Expected creation failure, got logger=%v err=%v", l, err)
	}
	if !errors.Is(err, api.ErrConfig) {
		t.Errorf("Expected ErrConfig, got %v", err)
	}
	if m.CreateEx.Load() != 1 {
		t.Errorf("Expected create_ex=1, got %d", m.CreateEx.Load())
	}
}

// BenchmarkLogger_Write measures buffered record append without flushes.
func BenchmarkLogger_Write(b *testing.B) {
	path := filepath.Join(b.TempDir(), "bench.log")
	l, err := buflog.New(path, 1<<20)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	defer l.Close()
	record := []byte("2026-08-22 10:00:00.000000 DEBUG [bench] borrow cycle complete\n")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Write(record)
		if i%16000 == 0 {
			l.Flush()
		}
	}
}
