package editor

import "io"

// AppendBuffer accumulates one frame of escape sequences and text so the
// whole refresh reaches the display in a single write. A fresh buffer is
// built per frame and its storage released by Flush.
type AppendBuffer struct {
	buf []byte
}

// Append copies p onto the end of the buffer. Earlier content is never
// touched; the backing storage reallocates at most once per call.
func (b *AppendBuffer) Append(p []byte) {
	b.buf = append(b.buf, p...)
}

// AppendString copies s onto the end of the buffer.
func (b *AppendBuffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// Len reports the number of buffered bytes.
func (b *AppendBuffer) Len() int {
	return len(b.buf)
}

// Flush writes the entire buffer to w in exactly one call and releases the
// storage, whether or not the write succeeded.
func (b *AppendBuffer) Flush(w io.Writer) error {
	_, err := w.Write(b.buf)
	b.buf = nil
	return err
}
