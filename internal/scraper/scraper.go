package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/summit-invite/internal/event"
)

const (
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36 summit-invite/1.0"
	Timeout   = 30 * time.Second
)

// Page is everything extracted from one fetch of the site
type Page struct {
	URL   string `json:"url"`
	Info  Info   `json:"event_info"`
	Links Links  `json:"external_links"`
}

// Scraper fetches the conference page over plain HTTP
type Scraper struct {
	client *http.Client
	url    string
}

// New creates a Scraper for url; an empty url means the summit site.
func New(url string) *Scraper {
	if url == "" {
		url = event.SummitURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
	}
}

// URL returns the page the scraper reads
func (s *Scraper) URL() string {
	return s.url
}

// Fetch downloads and analyses the page
func (s *Scraper) Fetch(ctx context.Context) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return Analyze(resp.Body, s.url)
}

// Analyze parses HTML from r and extracts event info and links.
func Analyze(r io.Reader, sourceURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return &Page{
		URL:   sourceURL,
		Info:  ExtractInfo(doc),
		Links: ExternalLinks(doc),
	}, nil
}
