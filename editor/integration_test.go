package editor

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"

	"tilde/terminal"
)

// TestEditorOverRealPty drives a full session against a live pty pair: one
// arrow key, then Ctrl-Q. The master side plays the part of the user's
// terminal emulator.
func TestEditorOverRealPty(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open() failed: %v", err)
	}
	defer ptmx.Close()
	defer tty.Close()

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: 80}); err != nil {
		t.Fatalf("pty.Setsize() failed: %v", err)
	}

	session, err := terminal.NewSession(tty, tty)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := session.EnterRaw(); err != nil {
		t.Fatalf("EnterRaw() failed: %v", err)
	}
	defer session.Restore()

	// Collect everything the editor draws.
	var mu sync.Mutex
	var display bytes.Buffer
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				mu.Lock()
				display.Write(buf[:n])
				mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	// Arrow down, then quit.
	if _, err := ptmx.Write([]byte("\x1b[B\x11")); err != nil {
		t.Fatalf("write keys to pty master failed: %v", err)
	}

	ed, err := New(terminal.NewConsole(session))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- ed.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after the quit key")
	}

	if got := ed.Cursor(); got != (Position{Row: 1}) {
		t.Errorf("Cursor() = %+v, want one row down", got)
	}

	// Give the drain goroutine a moment to pick up the final writes.
	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		out := append([]byte(nil), display.Bytes()...)
		mu.Unlock()
		if bytes.Contains(out, []byte("Tilde editor -- version")) &&
			bytes.Contains(out, []byte("\x1b[2J")) {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("display output missing banner or clear sequence:\n%q", out)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
