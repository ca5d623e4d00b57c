package terminal

import "fmt"

// Pre-declared VT100 sequence fragments shared by the renderer, the quit
// path and the window-size fallback.
var (
	ClearScreen = []byte("\x1b[2J")
	CursorHome  = []byte("\x1b[H")
	HideCursor  = []byte("\x1b[?25l")
	ShowCursor  = []byte("\x1b[?25h")
	EraseLine   = []byte("\x1b[K")

	cursorFarRight = []byte("\x1b[999C")
	cursorFarDown  = []byte("\x1b[999B")
	cursorPosQuery = []byte("\x1b[6n")
)

// CursorPosition returns the positioning sequence for a 0-indexed cell.
// The wire protocol is 1-indexed.
func CursorPosition(row, col int) []byte {
	return []byte(fmt.Sprintf("\x1b[%d;%dH", row+1, col+1))
}
