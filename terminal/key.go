package terminal

import "fmt"

// Key is one decoded logical key event. Plain bytes map to their own value;
// decoded multi-byte sequences map to the named keys above 255.
type Key int

// KeyEscape is the bare escape key, also the result of any escape sequence
// the reader does not recognize.
const KeyEscape Key = 0x1b

const (
	KeyArrowUp Key = 1000 + iota
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
)

// Ctrl returns the control-key variant of a letter: Ctrl('q') is Ctrl-Q.
func Ctrl(b byte) Key {
	return Key(b & 0x1f)
}

// String names the key for trace output.
func (k Key) String() string {
	switch k {
	case KeyArrowUp:
		return "arrow-up"
	case KeyArrowDown:
		return "arrow-down"
	case KeyArrowRight:
		return "arrow-right"
	case KeyArrowLeft:
		return "arrow-left"
	case KeyEscape:
		return "escape"
	}
	switch {
	case k < 32:
		return fmt.Sprintf("ctrl-%c", '@'+rune(k))
	case k == 127:
		return "delete"
	case k < 256:
		return fmt.Sprintf("'%c'", rune(k))
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// ByteSource yields terminal input one byte at a time. ok reports whether a
// byte arrived before the read window elapsed.
type ByteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// KeyReader decodes the raw byte stream into key events.
type KeyReader struct {
	src ByteSource
}

// NewKeyReader builds a KeyReader over the given input stream.
func NewKeyReader(src ByteSource) *KeyReader {
	return &KeyReader{src: src}
}

// decodeState tracks progress through an escape sequence.
type decodeState int

const (
	stateStart   decodeState = iota // no escape pending
	stateEscape                     // saw ESC
	stateBracket                    // saw ESC [
)

// ReadKey blocks until one logical key event is available. Timeouts while
// waiting for the first byte are retried indefinitely; a timeout in the
// middle of an escape sequence ends the sequence and yields the escape key
// alone. Only the arrow sequences ESC [ A..D are decoded; anything else
// after an ESC degrades to KeyEscape, never an error.
func (r *KeyReader) ReadKey() (Key, error) {
	state := stateStart
	for {
		b, ok, err := r.src.ReadByte()
		if err != nil {
			return 0, err
		}
		if !ok {
			if state == stateStart {
				continue
			}
			return KeyEscape, nil
		}

		switch state {
		case stateStart:
			if Key(b) == KeyEscape {
				state = stateEscape
				continue
			}
			return Key(b), nil
		case stateEscape:
			if b == '[' {
				state = stateBracket
				continue
			}
			return KeyEscape, nil
		case stateBracket:
			switch b {
			case 'A':
				return KeyArrowUp, nil
			case 'B':
				return KeyArrowDown, nil
			case 'C':
				return KeyArrowRight, nil
			case 'D':
				return KeyArrowLeft, nil
			}
			return KeyEscape, nil
		}
	}
}
