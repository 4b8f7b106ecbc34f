package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/summit-invite/internal/calendar"
	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/pfrederiksen/summit-invite/internal/logger"
)

var fixedNow = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	now = func() time.Time { return fixedNow }
	os.Exit(m.Run())
}

// execute runs the root command with args and stdin, returning stdout
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	prev := logger.Default()
	defer logger.SetDefault(prev)

	err := cmd.Execute()
	return out.String(), err
}

func readInvite(t *testing.T, path string) *calendar.Invite {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	inv, err := calendar.Parse(f)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return inv
}

func TestGenerate_Yes(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "", "generate", "--yes", "--output-dir", dir)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	path := filepath.Join(dir, "ai-engineer-summit-2025.ics")
	if !strings.Contains(out, "File location: "+path) {
		t.Errorf("output should report the absolute path, got:\n%s", out)
	}

	inv := readInvite(t, path)
	if inv.Event.Title != event.SummitTitle {
		t.Errorf("Title = %q", inv.Event.Title)
	}
	if inv.UID != calendar.GenerateUID(fixedNow) {
		t.Errorf("UID = %q", inv.UID)
	}
}

func TestGenerate_Prompt(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		wantFile  bool
		wantInOut string
		wantErr   bool
	}{
		{
			name:      "confirmed after a bad answer",
			stdin:     "maybe\ny\nn\n",
			wantFile:  true,
			wantInOut: "Please enter 'y' for yes or 'n' for no.",
		},
		{
			name:      "declined",
			stdin:     "no\n",
			wantInOut: "Calendar generation cancelled.",
		},
		{
			name:    "stdin closed",
			stdin:   "",
			wantErr: true,
		},
		{
			name:     "confirmed without trailing newline",
			stdin:    "yes",
			wantFile: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			out, err := execute(t, tt.stdin, "generate", "-o", dir, "--filename", "invite")

			if (err != nil) != tt.wantErr {
				t.Fatalf("generate error = %v, wantErr %v", err, tt.wantErr)
			}
			if !strings.Contains(out, tt.wantInOut) {
				t.Errorf("output missing %q:\n%s", tt.wantInOut, out)
			}

			_, statErr := os.Stat(filepath.Join(dir, "invite.ics"))
			if gotFile := statErr == nil; gotFile != tt.wantFile {
				t.Errorf("file written = %v, want %v", gotFile, tt.wantFile)
			}
		})
	}
}

func TestGenerate_Overrides(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "", "generate", "-y", "-o", dir,
		"--title", "Go Meetup; Berlin",
		"--start", "2026-03-01T18:00:00+01:00",
		"--end", "2026-03-01T21:00:00+01:00",
		"--location", "Betahaus, Berlin",
		"--description", `Talks\nPizza`,
		"--url", "https://example.com/meetup",
		"--category", "MEETUP",
		"--category", "GO",
	)
	if err != nil {
		t.Fatalf("generate error = %v", err)
	}

	inv := readInvite(t, filepath.Join(dir, "go-meetup-berlin.ics"))
	d := inv.Event
	if d.Title != "Go Meetup; Berlin" {
		t.Errorf("Title = %q", d.Title)
	}
	if want := time.Date(2026, 3, 1, 17, 0, 0, 0, time.UTC); !d.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", d.Start, want)
	}
	if d.Description != "Talks\nPizza" {
		t.Errorf("Description = %q", d.Description)
	}
	if strings.Join(d.Categories, ",") != "MEETUP,GO" {
		t.Errorf("Categories = %v", d.Categories)
	}
}

func TestGenerate_Preview(t *testing.T) {
	out, err := execute(t, "", "generate", "-y", "-o", t.TempDir(), "--preview", "3")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{" 1: BEGIN:VCALENDAR", " 2: VERSION:2.0", " 3: PRODID:", "more lines)"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q", want)
		}
	}
	if strings.Contains(out, " 4: ") {
		t.Error("preview should stop after 3 lines")
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"start equals end", []string{"--start", "2025-11-19T09:00:00Z", "--end", "2025-11-19T09:00:00Z"}},
		{"empty title", []string{"--title", ""}},
		{"bad url", []string{"--url", "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			args := append([]string{"generate", "-y", "-o", dir}, tt.args...)

			_, err := execute(t, "", args...)
			if !errors.Is(err, event.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}

			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Error("nothing should be written for an invalid event")
			}
		})
	}
}

func TestGenerate_BadTime(t *testing.T) {
	_, err := execute(t, "", "generate", "-y", "-o", t.TempDir(), "--start", "tomorrow")
	if err == nil || !strings.Contains(err.Error(), "--start") {
		t.Errorf("error = %v, want --start parse error", err)
	}
}

func TestGenerate_Unwritable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "", "generate", "-y", "-o", filepath.Join(blocker, "sub"))
	if !errors.Is(err, calendar.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
}

func TestShow(t *testing.T) {
	out, err := execute(t, "", "show")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Event: AI Engineer Summit 2025",
		"Location: New York, New York",
		"Dates: November 19 - November 22, 2025",
		"Website: https://apply.ai.engineer/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestVerify(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "", "generate", "-y", "-o", dir); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "ai-engineer-summit-2025.ics")

	out, err := execute(t, "", "verify", path)
	if err != nil {
		t.Fatalf("verify error = %v", err)
	}
	for _, want := range []string{"is a valid calendar", "Title: AI Engineer Summit 2025", "Alarms: 1 (first: -P1D)"} {
		if !strings.Contains(out, want) {
			t.Errorf("verify output missing %q:\n%s", want, out)
		}
	}
}

func TestVerify_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.ics")
	if err := os.WriteFile(bad, []byte("not a calendar"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "", "verify", bad); err == nil {
		t.Error("verify should fail on a malformed file")
	}
	if _, err := execute(t, "", "verify", filepath.Join(dir, "missing.ics")); err == nil {
		t.Error("verify should fail on a missing file")
	}
	if _, err := execute(t, "", "verify"); err == nil {
		t.Error("verify should require a file argument")
	}
}

func TestBookmarklet(t *testing.T) {
	out, err := execute(t, "", "bookmarklet")
	if err != nil {
		t.Fatal(err)
	}
	out = strings.TrimSpace(out)
	if !strings.HasPrefix(out, "javascript:") {
		t.Errorf("output = %.40q", out)
	}
	if !strings.Contains(out, "ai-engineer-summit-2025.ics") {
		t.Error("bookmarklet should name the download after the event")
	}
}

func TestLogLevelFlag(t *testing.T) {
	if _, err := execute(t, "", "--log-level", "loud", "show"); err == nil {
		t.Error("unknown log level should be rejected")
	}
}

func TestPrompter_ConfirmDefault(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"\n", true},
		{"y\n", true},
		{"whatever\n", true},
		{"n\n", false},
		{"NO\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.in), func(t *testing.T) {
			got, err := newPrompter(strings.NewReader(tt.in), io.Discard).ConfirmDefault("?")
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ConfirmDefault(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnvDefaults(t *testing.T) {
	t.Setenv(envHeadless, "false")
	t.Setenv(envOutputDir, "  /tmp/out ")

	if envBool(envHeadless, true) {
		t.Error("envBool should read false")
	}
	if got := envOr(envOutputDir, "."); got != "/tmp/out" {
		t.Errorf("envOr = %q", got)
	}

	t.Setenv(envHeadless, "sometimes")
	if !envBool(envHeadless, true) {
		t.Error("envBool should fall back on junk")
	}
}

func TestDateRange(t *testing.T) {
	d := event.Summit2025()
	if got := dateRange(d); got != "November 19 - November 22, 2025" {
		t.Errorf("dateRange() = %q", got)
	}

	d.End = d.Start.Add(2 * time.Hour)
	if got := dateRange(d); got != "November 19, 2025" {
		t.Errorf("same-day dateRange() = %q", got)
	}

	d.End = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if got := dateRange(d); got != "November 19, 2025 - January 2, 2026" {
		t.Errorf("cross-year dateRange() = %q", got)
	}
}
