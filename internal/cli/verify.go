package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/pfrederiksen/summit-invite/internal/calendar"
	"github.com/spf13/cobra"
)

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE.ics",
		Short: "Parse an .ics file and print the event it contains",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening calendar: %w", err)
			}
			defer f.Close()

			inv, err := calendar.Parse(f)
			if err != nil {
				return err
			}
			if err := inv.Event.Validate(); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			w := cmd.OutOrStdout()
			d := inv.Event
			fmt.Fprintf(w, "✅ %s is a valid calendar\n", args[0])
			field(w, "UID", inv.UID)
			field(w, "Title", d.Title)
			field(w, "Start", d.Start.Format("2006-01-02 15:04 MST"))
			field(w, "End", d.End.Format("2006-01-02 15:04 MST"))
			field(w, "Location", d.Location)
			field(w, "URL", d.URL)
			field(w, "Categories", strings.Join(d.Categories, ", "))
			fmt.Fprintf(w, "  Alarms: %d", inv.Alarms)
			if inv.Trigger != "" {
				fmt.Fprintf(w, " (first: %s)", inv.Trigger)
			}
			fmt.Fprintln(w)
			return nil
		},
	}
}
