// Package scraper fetches the conference website and extracts what it can
// from the HTML: the event title, dates, location, a description, and links to
// the speaker, volunteer and sponsor forms.
//
// Extraction is heuristic. A field that cannot be found is left empty.
package scraper
