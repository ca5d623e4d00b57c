package main

import (
	"fmt"
	"os"

	"tilde/cmd/tilde/commands"
	"tilde/internal/log"
)

func main() {
	log.Init()

	args := os.Args[1:]
	cmd := "edit"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "edit":
		err = commands.EditCommand(args)
	case "keys":
		err = commands.KeysCommand(args)
	default:
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  tilde [edit]")
		fmt.Fprintln(os.Stderr, "  tilde keys")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "tilde: %v\n", err)
		os.Exit(1)
	}
}
