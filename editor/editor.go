// Package editor implements the session loop, cursor state and screen
// rendering of the editor skeleton.
package editor

import (
	"fmt"
	"io"

	"tilde/internal/log"
	"tilde/terminal"
)

// Version is the banner version string.
const Version = "0.0.1"

// Console is the terminal surface the editor runs on. *terminal.Console
// satisfies it in production; tests substitute scripted fakes.
type Console interface {
	io.Writer
	ReadKey() (terminal.Key, error)
	Size() (rows, cols int, err error)
}

// Position is a 0-indexed screen cell, origin top-left.
type Position struct {
	Row int
	Col int
}

// Editor is the session object: the cursor, the last-known display size and
// the console it draws to. It is built once at startup and passed through
// the loop explicitly; there is no process-global state.
type Editor struct {
	console Console
	cursor  Position
	rows    int
	cols    int
	quitKey terminal.Key
}

// New sizes an editor against the console's current display size.
func New(c Console) (*Editor, error) {
	rows, cols, err := c.Size()
	if err != nil {
		return nil, fmt.Errorf("window size: %w", err)
	}
	return &Editor{
		console: c,
		rows:    rows,
		cols:    cols,
		quitKey: terminal.Ctrl('q'),
	}, nil
}

// Cursor reports the current cursor position.
func (e *Editor) Cursor() Position {
	return e.cursor
}

// Run drives the session loop: refresh the size, render one frame, read one
// key, dispatch. The quit key clears the screen and returns nil; any read
// or write failure stops the loop immediately with the error naming the
// failing operation.
func (e *Editor) Run() error {
	for {
		if err := e.refreshSize(); err != nil {
			return err
		}
		if err := e.refreshScreen(); err != nil {
			return err
		}
		key, err := e.console.ReadKey()
		if err != nil {
			return err
		}
		if key == e.quitKey {
			log.Debug.Printf("quit")
			return e.clearScreen()
		}
		e.processKey(key)
	}
}

// processKey applies one key event to the editor state. Keys with no
// binding have no observable effect; there is no text model to edit yet.
func (e *Editor) processKey(k terminal.Key) {
	switch k {
	case terminal.KeyArrowUp, terminal.KeyArrowDown,
		terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.moveCursor(k)
	default:
		log.Debug.Printf("ignored key %s", k)
	}
}

// moveCursor shifts the cursor one cell and clamps it to the visible
// screen. The positioning sequence on the wire is 1-indexed and unsigned,
// so the cursor must never leave [0, rows) x [0, cols).
func (e *Editor) moveCursor(k terminal.Key) {
	switch k {
	case terminal.KeyArrowUp:
		e.cursor.Row--
	case terminal.KeyArrowDown:
		e.cursor.Row++
	case terminal.KeyArrowLeft:
		e.cursor.Col--
	case terminal.KeyArrowRight:
		e.cursor.Col++
	}
	e.clampCursor()
}

func (e *Editor) clampCursor() {
	if e.cursor.Row >= e.rows {
		e.cursor.Row = e.rows - 1
	}
	if e.cursor.Row < 0 {
		e.cursor.Row = 0
	}
	if e.cursor.Col >= e.cols {
		e.cursor.Col = e.cols - 1
	}
	if e.cursor.Col < 0 {
		e.cursor.Col = 0
	}
}

// refreshSize re-queries the display size and clamps the cursor into the
// new bounds when the terminal was resized between frames.
func (e *Editor) refreshSize() error {
	rows, cols, err := e.console.Size()
	if err != nil {
		return fmt.Errorf("window size: %w", err)
	}
	if rows != e.rows || cols != e.cols {
		log.Debug.Printf("resize %dx%d -> %dx%d", e.rows, e.cols, rows, cols)
		e.rows, e.cols = rows, cols
		e.clampCursor()
	}
	return nil
}

// clearScreen wipes the display and homes the cursor, used on quit.
func (e *Editor) clearScreen() error {
	var ab AppendBuffer
	ab.Append(terminal.ClearScreen)
	ab.Append(terminal.CursorHome)
	return ab.Flush(e.console)
}
