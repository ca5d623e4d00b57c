package editor

import (
	"bytes"
	"errors"
	"testing"
)

// countingWriter records every Write call it receives.
type countingWriter struct {
	writes [][]byte
	err    error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

func TestAppendPreservesEarlierContent(t *testing.T) {
	var ab AppendBuffer
	ab.AppendString("abc")
	ab.Append([]byte("def"))
	ab.AppendString("")
	ab.AppendString("g")

	if ab.Len() != 7 {
		t.Errorf("Len() = %d, want 7", ab.Len())
	}

	var w countingWriter
	if err := ab.Flush(&w); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if got := string(w.writes[0]); got != "abcdefg" {
		t.Errorf("flushed %q, want %q", got, "abcdefg")
	}
}

func TestFlushWritesOnce(t *testing.T) {
	var ab AppendBuffer
	for i := 0; i < 50; i++ {
		ab.AppendString("~\r\n")
	}

	var w countingWriter
	if err := ab.Flush(&w); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}
	if len(w.writes) != 1 {
		t.Errorf("Flush() issued %d writes, want exactly 1", len(w.writes))
	}
	if !bytes.Equal(w.writes[0], bytes.Repeat([]byte("~\r\n"), 50)) {
		t.Error("flushed content does not match appended content")
	}
}

func TestFlushReleasesStorageEvenOnError(t *testing.T) {
	writeErr := errors.New("write: broken pipe")
	var ab AppendBuffer
	ab.AppendString("frame")

	if err := ab.Flush(&countingWriter{err: writeErr}); !errors.Is(err, writeErr) {
		t.Errorf("Flush() error = %v, want %v", err, writeErr)
	}
	if ab.Len() != 0 {
		t.Errorf("Len() after failed Flush() = %d, want 0", ab.Len())
	}
}
