package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/summit-invite/internal/event"
)

const (
	// MIMEType is the media type of the documents produced here
	MIMEType = "text/calendar"

	// ProductID identifies this tool in the PRODID property
	ProductID = "-//AI Engineer Summit//summit-invite//EN"

	uidNamespace = "ai-engineer-summit-2025"
	uidDomain    = "ai.engineer"

	maxLineOctets = 75
)

// GenerateICS renders d as a calendar holding one VEVENT with one VALARM.
// seed is the generation instant; it feeds both UID and DTSTAMP.
func GenerateICS(d event.Descriptor, seed time.Time) (string, error) {
	if err := d.Validate(); err != nil {
		return "", err
	}

	var ics strings.Builder
	w := func(line string) {
		ics.WriteString(fold(line))
		ics.WriteString("\r\n")
	}

	w("BEGIN:VCALENDAR")
	w("VERSION:2.0")
	w("PRODID:" + ProductID)
	w("CALSCALE:GREGORIAN")
	w("METHOD:PUBLISH")
	w("BEGIN:VEVENT")

	w("UID:" + GenerateUID(seed))
	w("DTSTART:" + formatICSTime(d.Start))
	w("DTEND:" + formatICSTime(d.End))
	w("DTSTAMP:" + formatICSTime(seed))
	w("SUMMARY:" + escapeICS(d.Title))
	w("LOCATION:" + escapeICS(d.Location))
	w("DESCRIPTION:" + escapeICS(d.Description))
	w("URL:" + d.URL)
	w("STATUS:CONFIRMED")

	if d.OrganizerEmail != "" {
		organizer := "ORGANIZER"
		if d.Organizer != "" {
			organizer += ";CN=" + quoteParam(d.Organizer)
		}
		w(organizer + ":mailto:" + d.OrganizerEmail)
	}
	w("TRANSP:OPAQUE")
	if len(d.Categories) > 0 {
		cats := make([]string, len(d.Categories))
		for i, c := range d.Categories {
			cats[i] = escapeICS(c)
		}
		w("CATEGORIES:" + strings.Join(cats, ","))
	}

	// Reminder one day before DTSTART
	w("BEGIN:VALARM")
	w("TRIGGER:-P1D")
	w("ACTION:DISPLAY")
	w("DESCRIPTION:" + escapeICS(d.Title+" starts tomorrow!"))
	w("END:VALARM")

	w("END:VEVENT")
	w("END:VCALENDAR")

	return ics.String(), nil
}

// GenerateUID combines the fixed namespace with the seed's Unix time.
func GenerateUID(seed time.Time) string {
	return fmt.Sprintf("%s-%d@%s", uidNamespace, seed.Unix(), uidDomain)
}

// formatICSTime formats a time.Time as an iCalendar UTC datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar TEXT values
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\n")
	return s
}

// quoteParam wraps a parameter value in DQUOTEs when it holds a separator.
// Line breaks become spaces; DQUOTE and other control characters are not
// allowed in param values and are dropped.
func quoteParam(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n':
			return ' '
		case r == '"' || r == 0x7f || (r < 0x20 && r != '\t'):
			return -1
		}
		return r
	}, s)
	if strings.ContainsAny(s, ",;:") {
		return `"` + s + `"`
	}
	return s
}

// fold splits a content line into 75-octet chunks joined by CRLF + space,
// never cutting a UTF-8 sequence.
func fold(line string) string {
	if len(line) <= maxLineOctets {
		return line
	}

	var b strings.Builder
	limit := maxLineOctets
	for len(line) > limit {
		cut := limit
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		b.WriteString(line[:cut])
		b.WriteString("\r\n ")
		line = line[cut:]
		// continuation lines lose one octet to the leading space
		limit = maxLineOctets - 1
	}
	b.WriteString(line)
	return b.String()
}

func isRuneStart(c byte) bool {
	return c&0xC0 != 0x80
}
