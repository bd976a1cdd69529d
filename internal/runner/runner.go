// Package runner executes external commands with optional piped input.
package runner

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/conn-castle/ansible-launcher/internal/messages"
)

// Command describes one external command invocation.
type Command struct {
	Name   string
	Args   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes cmd and waits for completion. A non-zero exit returns an error
// wrapping the *exec.ExitError so callers can recover the exit code; a command
// that could not start returns a distinct error.
func Run(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf(messages.RunnerNameRequired)
	}
	c := exec.Command(cmd.Name, cmd.Args...)
	c.Stdin = cmd.Stdin
	c.Stdout = cmd.Stdout
	c.Stderr = cmd.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf(messages.RunnerExitFmt, cmd.Name, err)
		}
		return fmt.Errorf(messages.RunnerStartFmt, cmd.Name, err)
	}
	return nil
}

// ExitCode returns the exit status carried by err and whether err represents
// a command that ran to completion with a non-zero status.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
