package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Links are the external forms referenced by the page
type Links struct {
	SpeakerForm   string `json:"speaker_form,omitempty"`
	VolunteerForm string `json:"volunteer_form,omitempty"`
	SponsorEmail  string `json:"sponsor_email,omitempty"`
}

// Empty reports whether no link was found
func (l Links) Empty() bool {
	return l == Links{}
}

// ExternalLinks classifies every anchor on the page. Later anchors of the
// same kind replace earlier ones.
func ExternalLinks(doc *goquery.Document) Links {
	var links Links

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		switch {
		case href == "":
		case strings.Contains(href, "forms.gle"):
			links.SpeakerForm = href
		case strings.Contains(href, "docs.google.com/forms"):
			links.VolunteerForm = href
		case strings.HasPrefix(strings.ToLower(href), "mailto:"):
			links.SponsorEmail = href
		}
	})

	return links
}
