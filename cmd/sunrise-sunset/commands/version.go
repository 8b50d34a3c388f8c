package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ubuntu/sunrise-sunset/internal/constants"
)

func (a *App) installVersion() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Returns the running version of " + constants.CmdName + " and exits",
		Args:  cobra.NoArgs,
		// Printing the version does not need any configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error { return getVersion(cmd.OutOrStdout()) },
	}
	a.cmd.AddCommand(cmd)
}

// getVersion prints the current version.
func getVersion(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "%s\t%s\n", constants.CmdName, constants.Version)
	return err
}
