package cli

import (
	"github.com/spf13/cobra"
)

func newURLDebugCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "urldebug <url>",
		Short: "Debug an accelerated URL at the edge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.URLDebug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printURLDebug(cmd.OutOrStdout(), result)
			return opts.export(result)
		},
	}
}
