package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	summitMarker       = "AI Engineer"
	minDescriptionLen  = 50
	maxDescriptionRune = 200
)

var (
	titleSelectors       = []string{"h1", ".title", `[class*="title"]`, `[class*="heading"]`}
	descriptionSelectors = []string{"p", ".description", `[class*="desc"]`}

	// e.g. "Nov 19 - 22, 2025" or "Nov 19–22, 2025"
	dateRangePattern = regexp.MustCompile(`Nov\s+\d+\s*[-–]\s*\d+,\s*2025`)
)

// Info is the event information found on the page
type Info struct {
	Title       string `json:"title,omitempty"`
	Date        string `json:"date,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Empty reports whether nothing was found
func (i Info) Empty() bool {
	return i == Info{}
}

// ExtractInfo pulls event details out of doc.
func ExtractInfo(doc *goquery.Document) Info {
	var info Info

	// Strategy: first selector whose first match mentions the summit wins
	for _, sel := range titleSelectors {
		first := doc.Find(sel).First()
		if first.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(first.Text())
		if strings.Contains(text, summitMarker) {
			info.Title = collapseSpace(text)
			break
		}
	}

	text := doc.Text()
	if strings.Contains(text, "Nov") && strings.Contains(text, "2025") {
		if m := dateRangePattern.FindString(text); m != "" {
			info.Date = strings.TrimSpace(m)
		}
	}

	if strings.Contains(text, "New York") {
		info.Location = "New York, New York"
	}

	for _, sel := range descriptionSelectors {
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			t := collapseSpace(s.Text())
			if len(t) > minDescriptionLen &&
				(strings.Contains(t, summitMarker) || strings.Contains(strings.ToLower(t), "summit")) {
				info.Description = truncate(t, maxDescriptionRune) + "..."
				return false
			}
			return true
		})
		if info.Description != "" {
			break
		}
	}

	return info
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most n runes
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
