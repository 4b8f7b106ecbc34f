package event

import "time"

const (
	SummitTitle = "AI Engineer Summit 2025"
	SummitURL   = "https://apply.ai.engineer/"
)

// Summit2025 returns the descriptor for the AI Engineer Summit 2025.
func Summit2025() Descriptor {
	return Descriptor{
		Title:    SummitTitle,
		Start:    time.Date(2025, time.November, 19, 9, 0, 0, 0, time.UTC),
		End:      time.Date(2025, time.November, 22, 17, 0, 0, 0, time.UTC),
		Location: "New York, New York",
		Description: "The premier technical AI summit for AI Engineers & AI Leaders who ship. " +
			"Invite-only, curated for top AI Engineers.\n\n" +
			"Website: " + SummitURL + "\n" +
			"Application Deadline: September 15, 2025",
		URL:        SummitURL,
		Organizer:  "AI Engineer Summit",
		Categories: []string{"CONFERENCE", "TECHNOLOGY", "AI"},
	}
}
