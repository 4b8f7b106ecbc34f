package cli

import (
	"fmt"

	"github.com/pfrederiksen/summit-invite/internal/calendar"
	"github.com/spf13/cobra"
)

func newBookmarkletCmd() *cobra.Command {
	var ef eventFlags

	cmd := &cobra.Command{
		Use:   "bookmarklet",
		Short: "Print a bookmarklet that downloads the invite from any page",
		Long: `Print a javascript: URL. Save it as a bookmark; clicking the bookmark on any
page downloads the calendar invite and shows a short on-page notice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ef.descriptor(cmd)
			if err != nil {
				return err
			}
			content, err := calendar.GenerateICS(d, now().UTC())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), calendar.Bookmarklet(content, d.Slug()))
			return nil
		},
	}
	ef.register(cmd)

	return cmd
}
