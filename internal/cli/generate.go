package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/summit-invite/internal/calendar"
	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	events    eventFlags
	outputDir string
	filename  string
	yes       bool
	reveal    bool
	preview   int
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the calendar invite to an .ics file",
		Long: `Write the event as an iCalendar (.ics) file with a reminder one day before
it starts. Without --yes the event is shown and confirmation is asked first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	opts.events.register(cmd)
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", envOr(envOutputDir, "."), "Directory for the .ics file")
	cmd.Flags().StringVar(&opts.filename, "filename", "", "File name (default: derived from the title)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Do not ask for confirmation")
	cmd.Flags().BoolVar(&opts.reveal, "reveal", false, "Open the file location when done")
	cmd.Flags().IntVar(&opts.preview, "preview", 0, "Print the first N lines of the generated file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	d, err := opts.events.descriptor(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out)

	writeDetails(out, d)

	if !opts.yes {
		ok, err := p.Confirm("\nGenerate calendar file?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Calendar generation cancelled.")
			return nil
		}
	}

	path, content, err := writeInvite(d, opts.outputDir, opts.filename)
	if err != nil {
		return err
	}

	writeSaved(out, d, path)

	if opts.preview > 0 {
		writePreview(out, content, opts.preview)
	}

	reveal := opts.reveal
	if !reveal && !opts.yes {
		// EOF here just means no
		answer, _ := p.Ask("\nOpen file location? (y/n): ")
		reveal = isYes(answer)
	}
	if reveal {
		if err := revealFile(path); err != nil {
			logger.Warn("could not open file location", logger.Fields{"path": path, "error": err.Error()})
		}
	}

	return nil
}

// writeInvite renders d and writes it under dir. An empty name falls back to
// the descriptor's slug.
func writeInvite(d event.Descriptor, dir, name string) (string, string, error) {
	content, err := calendar.GenerateICS(d, now().UTC())
	if err != nil {
		return "", "", err
	}

	if name == "" {
		name = d.Slug()
	}

	path, err := calendar.WriteFile(dir, name, content)
	if err != nil {
		logger.Error("writing calendar file failed", logger.Fields{"dir": dir, "name": name}, err)
		return "", "", err
	}

	logger.Info("calendar written", logger.Fields{"path": path, "bytes": len(content)})
	return path, content, nil
}

func writeSaved(w io.Writer, d event.Descriptor, path string) {
	fmt.Fprintln(w, "✅ Calendar event saved successfully!")
	fmt.Fprintf(w, "📁 File location: %s\n", path)
	fmt.Fprintf(w, "📅 Event: %s\n", d.Title)
	if d.Location != "" {
		fmt.Fprintf(w, "📍 Location: %s\n", d.Location)
	}
	fmt.Fprintf(w, "🗓️  Date: %s\n", dateRange(d))
	fmt.Fprintln(w, "\n💡 To add to your calendar:")
	fmt.Fprintln(w, "   1. Open your calendar app (Google Calendar, Outlook, Apple Calendar, etc.)")
	fmt.Fprintf(w, "   2. Import the .ics file: %s\n", filepath.Base(path))
	fmt.Fprintln(w, "   3. The event will be added with a reminder one day before!")
}

// writePreview prints the first n content lines, numbered
func writePreview(w io.Writer, content string, n int) {
	lines := strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")

	fmt.Fprintln(w, "\n📄 Preview of generated .ics content:")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for i, line := range lines {
		if i == n {
			fmt.Fprintf(w, "... (%d more lines)\n", len(lines)-n)
			break
		}
		fmt.Fprintf(w, "%2d: %s\n", i+1, line)
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}
