package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Size reports the display size in rows and columns. The primary path is
// the TIOCGWINSZ ioctl; terminals that cannot answer it are measured by
// parking the cursor at the far bottom-right corner and asking it to report
// its position. The fallback requires raw mode to be active, since the
// report arrives on the input stream.
func (s *Session) Size() (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(s.outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Row), int(ws.Col), nil
	}
	return s.sizeFromCursorReport()
}

// sizeFromCursorReport implements the VT100 fallback: cursor-forward and
// cursor-down by 999 stop at the screen edge, and the device status report
// query answers with the cursor's 1-indexed position.
func (s *Session) sizeFromCursorReport() (rows, cols int, err error) {
	for _, seq := range [][]byte{cursorFarRight, cursorFarDown, cursorPosQuery} {
		if _, err := s.Write(seq); err != nil {
			return 0, 0, fmt.Errorf("window size: %w", err)
		}
	}

	// Response: ESC [ <rows> ; <cols> R
	var resp []byte
	for len(resp) < 32 {
		b, ok, err := s.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("window size: %w", err)
		}
		if !ok || b == 'R' {
			break
		}
		resp = append(resp, b)
	}
	return parseCursorReport(resp)
}

// parseCursorReport decodes "ESC [ rows ; cols" with the trailing R already
// consumed.
func parseCursorReport(resp []byte) (rows, cols int, err error) {
	if len(resp) < 2 || resp[0] != 0x1b || resp[1] != '[' {
		return 0, 0, fmt.Errorf("window size: bad cursor report %q", resp)
	}
	if _, err := fmt.Sscanf(string(resp[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("window size: parse cursor report %q: %w", resp, err)
	}
	return rows, cols, nil
}
