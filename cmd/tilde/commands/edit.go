package commands

import (
	"flag"
	"os"

	"tilde/editor"
	"tilde/terminal"
)

// EditCommand runs the interactive editor session. The deferred block is
// the raw-mode guard: the display is cleared and the terminal restored on
// every exit path, including fatal errors surfaced from deep inside the
// loop.
func EditCommand(args []string) (err error) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
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
		session.Write(terminal.ClearScreen)
		session.Write(terminal.CursorHome)
		if rerr := session.Restore(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	ed, err := editor.New(terminal.NewConsole(session))
	if err != nil {
		return err
	}
	return ed.Run()
}
