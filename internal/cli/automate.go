package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/pfrederiksen/summit-invite/internal/event"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
	"github.com/pfrederiksen/summit-invite/internal/signup"
	"github.com/pfrederiksen/summit-invite/internal/storage"
	"github.com/spf13/cobra"
)

type automateOptions struct {
	events      eventFlags
	siteURL     string
	email       string
	headless    bool
	calendar    bool
	interactive bool
	results     string
	screenshot  string
	outputDir   string
	chromePath  string
	timeout     time.Duration
	settle      time.Duration
	stepTimeout time.Duration
}

func newAutomateCmd() *cobra.Command {
	opts := &automateOptions{}

	cmd := &cobra.Command{
		Use:   "automate",
		Short: "Visit the summit website, sign up with an email and write the invite",
		Long: `Open the summit website in a headless browser, record what the page says
about the event, fill in and submit the email signup form when --email is
given, write the calendar invite, and save a JSON record of the run.

Every browser step is best-effort: a missing form field or button is logged as
a skipped step. Only failing to load the page stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAutomate(cmd, opts)
		},
	}

	opts.events.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&opts.siteURL, "site", envOr(envURL, event.SummitURL), "Website to automate")
	fs.StringVar(&opts.email, "email", envOr(envEmail, ""), "Email address for the signup form")
	fs.BoolVar(&opts.headless, "headless", envBool(envHeadless, true), "Run the browser without a window")
	fs.BoolVar(&opts.calendar, "calendar", true, "Also write the calendar invite")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "Ask for email, headless mode and calendar generation")
	fs.StringVar(&opts.results, "results", storage.DefaultResultsFile, "Where to save the run record")
	fs.StringVar(&opts.screenshot, "screenshot", "ai_engineer_site.png", "Screenshot path after loading the page (empty to skip)")
	fs.StringVarP(&opts.outputDir, "output-dir", "o", envOr(envOutputDir, "."), "Directory for the .ics file")
	fs.StringVar(&opts.chromePath, "chrome-path", envOr(envChrome, ""), "Chrome/Chromium executable (default: auto-detect)")
	fs.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Give up on the browser after this long")
	fs.DurationVar(&opts.settle, "settle", signup.DefaultSettle, "Wait after submitting the form")
	fs.DurationVar(&opts.stepTimeout, "step-timeout", signup.DefaultStepTimeout, "Give up on a single browser step after this long")

	return cmd
}

func runAutomate(cmd *cobra.Command, opts *automateOptions) error {
	d, err := opts.events.descriptor(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := newPrompter(cmd.InOrStdin(), out)

	fmt.Fprintln(out, "🚀 AI Engineer Website Automation Tool")
	fmt.Fprintln(out, rule)

	if opts.interactive {
		if err := askAutomateOptions(p, opts); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	store, err := storage.New(opts.results)
	if err != nil {
		return err
	}

	browser, err := newBrowser(signup.ChromeOptions{
		Headless:  opts.headless,
		UserAgent: scraper.UserAgent,
		ExecPath:  opts.chromePath,
	})
	if err != nil {
		return fmt.Errorf("%w (is Chrome or Chromium installed?)", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			logger.Debug("closing browser", logger.Fields{"error": err.Error()})
		}
	}()

	fmt.Fprintf(out, "🌐 Navigating to %s\n", opts.siteURL)
	res, runErr := signup.Run(ctx, browser, signup.Options{
		URL:         opts.siteURL,
		Email:       opts.email,
		Screenshot:  opts.screenshot,
		Settle:      opts.settle,
		StepTimeout: opts.stepTimeout,
	})

	results := &storage.Results{
		WebsiteURL:  opts.siteURL,
		EmailSignup: opts.email != "",
	}
	results.FromRun(res)
	writeSteps(out, res)

	var calErr error
	if runErr == nil && opts.calendar {
		fmt.Fprintln(out, "\n📅 Generating calendar event...")
		path, _, err := writeInvite(d, opts.outputDir, "")
		if err != nil {
			calErr = err
			fmt.Fprintf(out, "❌ Error saving calendar file: %v\n", err)
		} else {
			results.CalendarGenerated = true
			results.CalendarPath = path
			fmt.Fprintf(out, "✅ Calendar file generated: %s\n", path)
		}
	}

	results.Metrics = logger.MetricsSnapshot()
	if err := store.Save(results); err != nil {
		return err
	}
	fmt.Fprintf(out, "\n📊 Automation results saved to: %s\n", store.Path())

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			fmt.Fprintln(out, "\n⏹️  Automation interrupted")
		}
		return runErr
	}
	if calErr != nil {
		return calErr
	}

	fmt.Fprintln(out, "\n🎉 Automation completed successfully!")

	if opts.interactive && !opts.headless {
		if keep, _ := p.Ask("\nKeep browser open for manual interaction? (y/n): "); isYes(keep) {
			_, _ = p.Ask("Press Enter when you're done with manual interaction...")
		}
	}

	return nil
}

func askAutomateOptions(p *prompter, opts *automateOptions) error {
	email, err := p.Ask("Enter your email for signup (or press Enter to skip): ")
	if err != nil {
		return err
	}
	opts.email = email

	if opts.headless, err = p.ConfirmDefault("Run browser in headless mode?"); err != nil {
		return err
	}
	if opts.calendar, err = p.ConfirmDefault("Generate calendar event?"); err != nil {
		return err
	}
	return nil
}

var stepIcons = map[signup.StepStatus]string{
	signup.StepDone:    "✅",
	signup.StepSkipped: "⏭️ ",
	signup.StepFailed:  "❌",
}

func writeSteps(w io.Writer, res *signup.Result) {
	if res == nil {
		return
	}
	for _, s := range res.Steps {
		line := fmt.Sprintf("%s %s", stepIcons[s.Status], s.Name)
		if s.Detail != "" {
			line += ": " + s.Detail
		}
		if s.Error != "" {
			line += " (" + s.Error + ")"
		}
		fmt.Fprintln(w, line)
	}
}
