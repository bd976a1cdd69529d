package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/conn-castle/ansible-launcher/internal/launcher"
	"github.com/conn-castle/ansible-launcher/internal/messages"
)

var launchRun = launcher.Run

// newRootCmd builds the root command. Flag parsing is disabled so the launcher
// defines no flags of its own: every argument, flags included, is forwarded
// verbatim to the provisioned ansible binary.
func newRootCmd(stdin io.Reader, stdout io.Writer, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := launchRun(args, stdin, stdout, stderr)
			if err != nil {
				return err
			}
			if code != 0 {
				return &SilentExitError{Code: code}
			}
			return nil
		},
	}
	return cmd
}
