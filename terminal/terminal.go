// Package terminal manages the controlling terminal: the raw-mode session
// lifecycle, timed byte reads, key decoding and window-size queries. It
// emits direct VT100 sequences and bypasses terminfo entirely.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"tilde/internal/log"
)

// readTimeoutMs bounds every read on the input stream. A read that sees no
// input within this window reports a timeout, not an error.
const readTimeoutMs = 100

// Session owns the controlling terminal for the life of the process. The
// attribute snapshot is captured once, on the first EnterRaw, and never
// mutated afterwards; Restore reapplies it verbatim.
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int
	saved *unix.Termios
}

// NewSession wraps the given terminal files, usually os.Stdin and os.Stdout.
func NewSession(in, out *os.File) (*Session, error) {
	inFd := int(in.Fd())
	if !term.IsTerminal(inFd) {
		return nil, fmt.Errorf("input is not a terminal")
	}
	return &Session{
		in:    in,
		out:   out,
		inFd:  inFd,
		outFd: int(out.Fd()),
	}, nil
}

// EnterRaw captures the current terminal attributes and applies the raw
// configuration: no break signal, no CR-to-NL translation, no parity check
// or 8th-bit stripping, no flow control, no output post-processing, no echo,
// no canonical buffering, no extended processing, no signal keys, 8-bit
// characters, and a read policy of "whatever is available, waiting at most
// 100 ms" (VMIN=0, VTIME=1).
func (s *Session) EnterRaw() error {
	if s.saved == nil {
		saved, err := unix.IoctlGetTermios(s.inFd, ioctlReadTermios)
		if err != nil {
			return fmt.Errorf("tcgetattr: %w", err)
		}
		s.saved = saved
	}

	raw := *s.saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = readTimeoutMs / 100 // VTIME ticks are tenths of a second

	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	log.Debug.Printf("entered raw mode on fd %d", s.inFd)
	return nil
}

// Restore reapplies the attributes captured by the first EnterRaw. Calling
// it before raw mode was ever entered is a no-op.
func (s *Session) Restore() error {
	if s.saved == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(s.inFd, ioctlWriteTermios, s.saved); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	log.Debug.Printf("restored terminal on fd %d", s.inFd)
	return nil
}

// Write sends escape sequences and text to the display.
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadByte reads one byte from the terminal. ok is false when the read
// window elapsed with nothing pending; that is not an error and the caller
// is expected to retry.
func (s *Session) ReadByte() (b byte, ok bool, err error) {
	fds := []unix.PollFd{{Fd: int32(s.inFd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, readTimeoutMs)
	if err != nil {
		if err == unix.EINTR {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("poll: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}

	var buf [1]byte
	rn, err := unix.Read(s.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("read: %w", err)
	}
	if rn == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

// Console bundles a Session with its KeyReader so callers hold one handle
// for reading keys, querying size and writing frames.
type Console struct {
	*Session
	keys *KeyReader
}

// NewConsole builds a Console over an established session.
func NewConsole(s *Session) *Console {
	return &Console{Session: s, keys: NewKeyReader(s)}
}

// ReadKey blocks until one logical key event arrives.
func (c *Console) ReadKey() (Key, error) {
	return c.keys.ReadKey()
}
