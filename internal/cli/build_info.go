package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newBuildInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "build-info",
		Short: "Show build version, date and commit",
		Args:  cobra.NoArgs,
		// build info needs no configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			info := a.opts.BuildInfo
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", info.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", info.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", info.BuildCommit())
		},
	}
}
