package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/spf13/cobra"
)

// eventFlags override fields of the default summit descriptor
type eventFlags struct {
	title          string
	start          string
	end            string
	location       string
	description    string
	url            string
	organizer      string
	organizerEmail string
	categories     []string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.title, "title", "", "Event title (default: AI Engineer Summit 2025)")
	fs.StringVar(&f.start, "start", "", "Start time, RFC 3339 (e.g. 2025-11-19T09:00:00Z)")
	fs.StringVar(&f.end, "end", "", "End time, RFC 3339")
	fs.StringVar(&f.location, "location", "", "Event location")
	fs.StringVar(&f.description, "description", "", `Event description; "\n" starts a new line`)
	fs.StringVar(&f.url, "url", "", "Event URL")
	fs.StringVar(&f.organizer, "organizer", "", "Organizer name")
	fs.StringVar(&f.organizerEmail, "organizer-email", "", "Organizer email address")
	fs.StringSliceVar(&f.categories, "category", nil, "Event category (repeatable)")
}

// descriptor applies the flags that were set on top of the summit defaults
// and validates the result.
func (f *eventFlags) descriptor(cmd *cobra.Command) (event.Descriptor, error) {
	d := event.Summit2025()
	changed := cmd.Flags().Changed

	if changed("title") {
		d.Title = f.title
	}
	if changed("start") {
		t, err := parseTime(f.start)
		if err != nil {
			return event.Descriptor{}, fmt.Errorf("--start: %w", err)
		}
		d.Start = t
	}
	if changed("end") {
		t, err := parseTime(f.end)
		if err != nil {
			return event.Descriptor{}, fmt.Errorf("--end: %w", err)
		}
		d.End = t
	}
	if changed("location") {
		d.Location = f.location
	}
	if changed("description") {
		d.Description = strings.ReplaceAll(f.description, `\n`, "\n")
	}
	if changed("url") {
		d.URL = f.url
	}
	if changed("organizer") {
		d.Organizer = f.organizer
	}
	if changed("organizer-email") {
		d.OrganizerEmail = f.organizerEmail
	}
	if changed("category") {
		d.Categories = f.categories
	}

	d = d.UTC()
	if err := d.Validate(); err != nil {
		return event.Descriptor{}, err
	}
	return d, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (want RFC 3339): %w", s, err)
	}
	return t, nil
}
