package cli

import (
	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var (
		siteURL string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Fetch the website without a browser and show what it says about the event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parseFormat(format)
			if err != nil {
				return err
			}

			page, err := scraper.New(siteURL).Fetch(cmd.Context())
			if err != nil {
				return err
			}
			return writePage(cmd.OutOrStdout(), page, f)
		},
	}

	cmd.Flags().StringVar(&siteURL, "site", envOr(envURL, event.SummitURL), "Website to inspect")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")

	return cmd
}
