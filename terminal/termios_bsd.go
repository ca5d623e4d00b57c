//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

// The write request drains pending output and flushes unread input before
// applying the new attributes, the tcsetattr(TCSAFLUSH) behavior.
const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETAF
)
