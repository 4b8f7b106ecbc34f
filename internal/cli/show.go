package cli

import "github.com/spf13/cobra"

func newShowCmd() *cobra.Command {
	var ef eventFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the event details",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ef.descriptor(cmd)
			if err != nil {
				return err
			}
			writeDetails(cmd.OutOrStdout(), d)
			return nil
		},
	}
	ef.register(cmd)

	return cmd
}
