package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mahdiidarabi/vanitykey/internal/ui"
)

// Build metadata, set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 130
)

// errInterrupted is returned when the search stopped without a match.
var errInterrupted = errors.New("search interrupted")

func main() {
	os.Exit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errInterrupted) {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Failure(err))
	}
	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errInterrupted):
		return exitInterrupted
	default:
		return exitError
	}
}
