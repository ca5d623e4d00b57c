package commands

import (
	"flag"
	"fmt"
	"os"

	"tilde/terminal"
)

// KeysCommand is the key-trace diagnostic mode: raw mode plus one printed
// line per decoded key event, until 'q' is pressed. Output uses CRLF
// because output post-processing is off in raw mode.
func KeysCommand(args []string) (err error) {
	fs := flag.NewFlagSet("keys", flag.ExitOnError)
	if perr := fs.Parse(args); perr != nil {
		return perr
	}

	session, err := terminal.NewSession(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	if err = session.EnterRaw(); err != nil {
		return err
	}
	defer func() {
		if rerr := session.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	fmt.Fprintf(session, "press keys to see their decoding, q quits\r\n")
	keys := terminal.NewKeyReader(session)
	for {
		key, err := keys.ReadKey()
		if err != nil {
			return err
		}
		if key == 'q' {
			return nil
		}
		fmt.Fprintf(session, "%d %s\r\n", int(key), key)
	}
}
