package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReferenceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reference <error-reference>",
		Short: "Translate an error reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, done, err := opts.newClient()
			if err != nil {
				return err
			}
			defer done()
			result, err := client.TranslateReference(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			translated, ok := result["translatedError"].(map[string]any)
			if !ok {
				return fmt.Errorf("response has no translatedError member")
			}
			printScalarFields(cmd.OutOrStdout(), translated)
			return opts.export(result)
		},
	}
}
