package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
	"github.com/pfrederiksen/summit-invite/internal/signup"
)

func TestSaveLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "storage-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := New(filepath.Join(tmpDir, "runs", DefaultResultsFile))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	m := logger.NewMetrics()
	m.IncrCounter("steps.done")
	m.RecordTiming("step.navigate", 250*time.Millisecond)

	in := &Results{
		WebsiteURL:        "https://apply.ai.engineer/",
		EventInfo:         scraper.Info{Title: "AI Engineer Summit 2025", Location: "New York, New York"},
		ExternalLinks:     scraper.Links{SpeakerForm: "https://forms.gle/x"},
		Steps:             []signup.Step{{Name: "navigate", Status: signup.StepDone, Duration: "250ms"}},
		EmailSignup:       true,
		CalendarGenerated: true,
		CalendarPath:      "/tmp/ai-engineer-summit-2025.ics",
		Metrics:           m.Snapshot(),
	}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := uuid.Parse(in.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", in.RunID, err)
	}
	if in.Timestamp.IsZero() {
		t.Error("Timestamp should be set on save")
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if out.RunID != in.RunID {
		t.Errorf("RunID = %q, want %q", out.RunID, in.RunID)
	}
	if !out.Timestamp.Equal(in.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", out.Timestamp, in.Timestamp)
	}
	if out.EventInfo != in.EventInfo || out.ExternalLinks != in.ExternalLinks {
		t.Errorf("page data mismatch: %+v", out)
	}
	if len(out.Steps) != 1 || out.Steps[0].Status != signup.StepDone {
		t.Errorf("Steps = %+v", out.Steps)
	}
	if out.Metrics.Counters["steps.done"] != 1 {
		t.Errorf("Metrics = %+v", out.Metrics)
	}
	if out.Metrics.Timings["step.navigate"].Max != "250ms" {
		t.Errorf("Timings = %+v", out.Metrics.Timings)
	}
}

func TestSave_KeepsExistingID(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "r.json"))
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	r := &Results{RunID: "fixed", Timestamp: ts}
	if err := store.Save(r); err != nil {
		t.Fatal(err)
	}
	if r.RunID != "fixed" || !r.Timestamp.Equal(ts) {
		t.Errorf("Save() should not overwrite RunID/Timestamp: %+v", r)
	}
}

func TestLoad_Missing(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = store.Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load() error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	store, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail on corrupt JSON")
	}
}

func TestFromRun(t *testing.T) {
	var r Results
	r.FromRun(nil)
	if r.WebsiteURL != "" {
		t.Error("FromRun(nil) should be a no-op")
	}

	r.FromRun(&signup.Result{
		URL:            "https://example.com",
		Info:           scraper.Info{Title: "T"},
		EmailSubmitted: true,
	})
	if r.WebsiteURL != "https://example.com" || r.EventInfo.Title != "T" || !r.EmailSubmitted {
		t.Errorf("FromRun() = %+v", r)
	}
}

func TestNew_DefaultPath(t *testing.T) {
	store, err := New("")
	if err != nil {
		t.Fatal(err)
	}
	if store.Path() != DefaultResultsFile {
		t.Errorf("Path() = %q", store.Path())
	}
}
