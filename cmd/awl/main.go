package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/conn-castle/ansible-launcher/internal/fetch"
)

var executeFunc = execute
var fatalColor = color.New(color.FgRed)

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdin, os.Stdout, os.Stderr, os.Exit)
}

// SilentExitError reports an exit code without emitting error output. It
// carries the forwarded ansible invocation's non-zero exit status, which is
// this process's exit status and not a launcher failure.
type SilentExitError struct {
	Code int
}

func (e *SilentExitError) Error() string {
	return fmt.Sprintf("exit %d", e.Code)
}

// execute runs the CLI command with the provided args and streams.
func execute(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	fetch.UserAgent = userAgent()
	cmd := newRootCmd(stdin, stdout, stderr)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI, exiting with the forwarded exit code or 1 on any
// fatal launcher error.
func runMain(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if err := executeFunc(args, stdin, stdout, stderr); err != nil {
		var silent *SilentExitError
		if errors.As(err, &silent) {
			exit(silent.Code)
			return
		}
		_, _ = fatalColor.Fprintln(stderr, err)
		exit(1)
	}
}

// userAgent formats the download User-Agent with build metadata.
func userAgent() string {
	ua := "ansible-launcher/" + Version
	if Commit != "" && Commit != "unknown" {
		ua += " (" + strings.TrimSpace(Commit) + ")"
	}
	return ua
}
