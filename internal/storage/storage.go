package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
	"github.com/pfrederiksen/summit-invite/internal/signup"
)

const DefaultResultsFile = "automation_results.json"

// Results is the record of one automation run
type Results struct {
	RunID             string          `json:"run_id"`
	Timestamp         time.Time       `json:"timestamp"`
	WebsiteURL        string          `json:"website_url"`
	EventInfo         scraper.Info    `json:"event_info"`
	ExternalLinks     scraper.Links   `json:"external_links"`
	Steps             []signup.Step   `json:"steps,omitempty"`
	EmailSignup       bool            `json:"email_signup"`
	EmailSubmitted    bool            `json:"email_submitted"`
	CalendarGenerated bool            `json:"calendar_generated"`
	CalendarPath      string          `json:"calendar_path,omitempty"`
	Metrics           logger.Snapshot `json:"metrics"`
}

// FromRun fills the page-derived fields from a signup result
func (r *Results) FromRun(res *signup.Result) {
	if res == nil {
		return
	}
	r.WebsiteURL = res.URL
	r.EventInfo = res.Info
	r.ExternalLinks = res.Links
	r.Steps = res.Steps
	r.EmailSubmitted = res.EmailSubmitted
}

// Storage reads and writes one results file
type Storage struct {
	path string
}

// New creates a Storage for path, expanding ~/ and creating the parent
// directory.
func New(path string) (*Storage, error) {
	if path == "" {
		path = DefaultResultsFile
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	return &Storage{path: path}, nil
}

// Path returns the results file location
func (s *Storage) Path() string {
	return s.path
}

// Save writes r, assigning a run ID and timestamp when missing
func (s *Storage) Save(r *Results) error {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}

	return nil
}

// Load reads the results file
func (s *Storage) Load() (*Results, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}

	var r Results
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}

	return &r, nil
}
