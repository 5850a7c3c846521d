package cli

import (
	"github.com/spf13/cobra"
)

func newEStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "estats <url>",
		Short: "Show edge error statistics for a URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.EStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printIndented(cmd.OutOrStdout(), result)
			return opts.export(result)
		},
	}
}

func newCPStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cpstats <cpcode>",
		Short: "Show edge error statistics for a CP code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.CPStats(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printIndented(cmd.OutOrStdout(), result)
			return opts.export(result)
		},
	}
}
