package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgetools/akaget/pkg/ruletree"
)

// errLookupFailed is what the user sees when a hostname does not resolve
// to an active property, or the API could not be reached for it.
var errLookupFailed = errors.New("hostname incorrect or issue with accessing the API")

func newOriginsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "origins <hostname>",
		Short: "List the origin servers of a property configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.Origins(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result == nil {
				return errLookupFailed
			}
			for _, host := range ruletree.OriginHostnames(result) {
				fmt.Fprintln(cmd.OutOrStdout(), host)
			}
			return opts.export(result)
		},
	}
}

func newPropertyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "property <hostname>",
		Short: "Show the active property version serving a hostname",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.PropertyByHostname(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if result == nil {
				return errLookupFailed
			}
			printScalarFields(cmd.OutOrStdout(), result)
			return opts.export(result)
		},
	}
}
