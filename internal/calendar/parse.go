package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/pfrederiksen/summit-invite/internal/event"
)

// Invite is what Parse recovers from a document
type Invite struct {
	Event   event.Descriptor
	UID     string
	Stamp   time.Time
	Alarms  int
	Trigger string
}

// Parse decodes the first VEVENT of an iCalendar document.
func Parse(r io.Reader) (*Invite, error) {
	cal, err := ical.NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding calendar: %w", err)
	}

	events := cal.Events()
	if len(events) == 0 {
		return nil, fmt.Errorf("calendar has no VEVENT")
	}
	ve := events[0]

	inv := &Invite{}
	d := &inv.Event

	if d.Title, err = ve.Props.Text(ical.PropSummary); err != nil {
		return nil, fmt.Errorf("reading SUMMARY: %w", err)
	}
	if d.Location, err = ve.Props.Text(ical.PropLocation); err != nil {
		return nil, fmt.Errorf("reading LOCATION: %w", err)
	}
	if d.Description, err = ve.Props.Text(ical.PropDescription); err != nil {
		return nil, fmt.Errorf("reading DESCRIPTION: %w", err)
	}
	if p := ve.Props.Get(ical.PropURL); p != nil {
		d.URL = p.Value
	}
	if d.Start, err = ve.DateTimeStart(time.UTC); err != nil {
		return nil, fmt.Errorf("reading DTSTART: %w", err)
	}
	if d.End, err = ve.DateTimeEnd(time.UTC); err != nil {
		return nil, fmt.Errorf("reading DTEND: %w", err)
	}
	d.Start, d.End = d.Start.UTC(), d.End.UTC()

	if p := ve.Props.Get(ical.PropOrganizer); p != nil {
		d.Organizer = p.Params.Get(ical.ParamCommonName)
		if email, ok := strings.CutPrefix(p.Value, "mailto:"); ok {
			d.OrganizerEmail = email
		}
	}
	if p := ve.Props.Get(ical.PropCategories); p != nil {
		if d.Categories, err = p.TextList(); err != nil {
			return nil, fmt.Errorf("reading CATEGORIES: %w", err)
		}
	}

	if inv.UID, err = ve.Props.Text(ical.PropUID); err != nil {
		return nil, fmt.Errorf("reading UID: %w", err)
	}
	if p := ve.Props.Get(ical.PropDateTimeStamp); p != nil {
		if inv.Stamp, err = p.DateTime(time.UTC); err != nil {
			return nil, fmt.Errorf("reading DTSTAMP: %w", err)
		}
	}

	for _, child := range ve.Children {
		if child.Name != ical.CompAlarm {
			continue
		}
		inv.Alarms++
		if inv.Trigger == "" {
			if p := child.Props.Get(ical.PropTrigger); p != nil {
				inv.Trigger = p.Value
			}
		}
	}

	return inv, nil
}
