package log

import (
	"io"
	"log"
	"os"
)

var (
	// Info logger for messages printed before raw mode is entered
	Info = log.New(os.Stderr, "", log.LstdFlags)

	// Debug logger for key and frame tracing
	Debug = log.New(io.Discard, "DEBUG: ", log.LstdFlags|log.Lmsgprefix)
)

// Init routes debug output to the file named by TILDE_LOG. Stdout and
// stderr are not usable for logging once the terminal is raw.
func Init() {
	path := os.Getenv("TILDE_LOG")
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	Debug.SetOutput(f)
}
