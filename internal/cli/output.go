package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

const rule = "=================================================="

// writeDetails prints the event summary shown before generating
func writeDetails(w io.Writer, d event.Descriptor) {
	fmt.Fprintf(w, "🎯 %s - Event Details\n", d.Title)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "📅 Event: %s\n", d.Title)
	if d.Location != "" {
		fmt.Fprintf(w, "📍 Location: %s\n", d.Location)
	}
	fmt.Fprintf(w, "🗓️  Dates: %s\n", dateRange(d))
	if d.URL != "" {
		fmt.Fprintf(w, "🌐 Website: %s\n", d.URL)
	}
	if d.Description != "" {
		fmt.Fprintf(w, "📝 Description: %s\n", preview(d.Description, 100))
	}
	fmt.Fprintln(w, rule)
}

// dateRange renders "November 19 - November 22, 2025", collapsing same-day
// and same-year ranges.
func dateRange(d event.Descriptor) string {
	s, e := d.Start.UTC(), d.End.UTC()
	switch {
	case s.Year() == e.Year() && s.YearDay() == e.YearDay():
		return s.Format("January 2, 2006")
	case s.Year() == e.Year():
		return s.Format("January 2") + " - " + e.Format("January 2, 2006")
	default:
		return s.Format("January 2, 2006") + " - " + e.Format("January 2, 2006")
	}
}

// preview flattens s to one line and cuts it at n runes
func preview(s string, n int) string {
	flat := strings.Join(strings.Fields(s), " ")
	r := []rune(flat)
	if len(r) <= n {
		return flat
	}
	return string(r[:n]) + "..."
}

// writePage outputs an inspected page in the requested format
func writePage(w io.Writer, page *scraper.Page, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(page)
	case FormatText:
		writePageText(w, page)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writePageText(w io.Writer, page *scraper.Page) {
	fmt.Fprintf(w, "🌐 %s\n", page.URL)

	if page.Info.Empty() {
		fmt.Fprintln(w, "No event information found.")
	} else {
		field(w, "Title", page.Info.Title)
		field(w, "Date", page.Info.Date)
		field(w, "Location", page.Info.Location)
		field(w, "Description", page.Info.Description)
	}

	if page.Links.Empty() {
		fmt.Fprintln(w, "No external forms found.")
		return
	}
	fmt.Fprintln(w, "\nExternal links:")
	field(w, "🎤 Speaker application", page.Links.SpeakerForm)
	field(w, "🙋 Volunteer form", page.Links.VolunteerForm)
	field(w, "📧 Sponsor email", page.Links.SponsorEmail)
}

func field(w io.Writer, label, value string) {
	if value != "" {
		fmt.Fprintf(w, "  %s: %s\n", label, value)
	}
}
