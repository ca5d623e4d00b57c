package editor

import (
	"fmt"

	"tilde/terminal"
)

// refreshScreen builds one frame in an append buffer and flushes it in a
// single write. The cursor is hidden while the frame is drawn so repaints
// never flicker.
func (e *Editor) refreshScreen() error {
	var ab AppendBuffer
	ab.Append(terminal.HideCursor)
	ab.Append(terminal.CursorHome)
	e.drawRows(&ab)
	ab.Append(terminal.CursorPosition(e.cursor.Row, e.cursor.Col))
	ab.Append(terminal.ShowCursor)
	return ab.Flush(e.console)
}

// drawRows emits one tilde per row, the centered version banner a third of
// the way down, and erase-to-end-of-line after each row so stale content
// never survives a redraw. Every row but the last ends with CRLF.
func (e *Editor) drawRows(ab *AppendBuffer) {
	for y := 0; y < e.rows; y++ {
		if y == e.rows/3 {
			e.drawWelcome(ab)
		} else {
			ab.AppendString("~")
		}
		ab.Append(terminal.EraseLine)
		if y < e.rows-1 {
			ab.AppendString("\r\n")
		}
	}
}

// drawWelcome centers the version banner, spending the first padding cell
// on the row's tilde. Banners wider than the screen are truncated.
func (e *Editor) drawWelcome(ab *AppendBuffer) {
	banner := fmt.Sprintf("Tilde editor -- version %s", Version)
	if len(banner) > e.cols {
		banner = banner[:e.cols]
	}
	padding := (e.cols - len(banner)) / 2
	if padding > 0 {
		ab.AppendString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		ab.AppendString(" ")
	}
	ab.AppendString(banner)
}
