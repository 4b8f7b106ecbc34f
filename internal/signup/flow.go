package signup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/summit-invite/internal/logger"
	"github.com/pfrederiksen/summit-invite/internal/scraper"
)

// StepStatus is the outcome of one automation step
type StepStatus string

const (
	StepDone    StepStatus = "done"
	StepSkipped StepStatus = "skipped"
	StepFailed  StepStatus = "failed"
)

const (
	DefaultSettle = 2 * time.Second
	// DefaultStepTimeout bounds each browser step
	DefaultStepTimeout = 30 * time.Second
)

// Step records one automation step
type Step struct {
	Name     string     `json:"name"`
	Status   StepStatus `json:"status"`
	Detail   string     `json:"detail,omitempty"`
	Error    string     `json:"error,omitempty"`
	Duration string     `json:"duration"`
}

// Options controls Run
type Options struct {
	URL        string
	Email      string
	Screenshot string
	// Settle is how long to wait after submitting
	Settle time.Duration
	// StepTimeout bounds each step; a step that runs out is recorded as failed
	StepTimeout time.Duration

	EmailLocator  Locator
	SubmitLocator Locator
}

// Result is what Run observed
type Result struct {
	URL            string        `json:"website_url"`
	Info           scraper.Info  `json:"event_info"`
	Links          scraper.Links `json:"external_links"`
	Steps          []Step        `json:"steps"`
	EmailSubmitted bool          `json:"email_submitted"`
}

// Step returns the step called name, if it ran
func (r *Result) Step(name string) (Step, bool) {
	for _, s := range r.Steps {
		if s.Name == name {
			return s, true
		}
	}
	return Step{}, false
}

type runner struct {
	result  *Result
	timeout time.Duration
}

// do runs fn as step name under its own deadline, recording its outcome,
// duration and metrics.
func (r *runner) do(ctx context.Context, name string, fn func(ctx context.Context) (StepStatus, string, error)) StepStatus {
	stepCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	status, detail, err := fn(stepCtx)
	elapsed := time.Since(start)

	step := Step{Name: name, Status: status, Detail: detail, Duration: elapsed.Round(time.Millisecond).String()}
	fields := logger.Fields{"step": name, "duration": step.Duration}
	if detail != "" {
		fields["detail"] = detail
	}

	switch status {
	case StepDone:
		logger.Info("step done", fields)
	case StepSkipped:
		logger.Warn("step skipped", fields)
	case StepFailed:
		if err != nil {
			step.Error = err.Error()
		}
		logger.Error("step failed", fields, err)
	}

	logger.IncrCounter("steps." + string(status))
	logger.RecordTiming("step."+name, elapsed)
	r.result.Steps = append(r.result.Steps, step)
	return status
}

// Run walks the site: navigate, screenshot, extract info and links, then fill
// and submit the email form when opts.Email is set. Only a failed navigation
// or a cancelled ctx is returned as an error; other failures are recorded as
// steps.
func Run(ctx context.Context, b Browser, opts Options) (*Result, error) {
	if opts.EmailLocator == nil {
		opts.EmailLocator = EmailField()
	}
	if opts.SubmitLocator == nil {
		opts.SubmitLocator = SubmitButton(opts.EmailLocator)
	}
	if opts.Settle == 0 {
		opts.Settle = DefaultSettle
	}
	if opts.StepTimeout <= 0 {
		opts.StepTimeout = DefaultStepTimeout
	}
	if opts.StepTimeout < opts.Settle {
		opts.StepTimeout += opts.Settle
	}

	res := &Result{URL: opts.URL}
	r := &runner{result: res, timeout: opts.StepTimeout}

	var navErr error
	r.do(ctx, "navigate", func(ctx context.Context) (StepStatus, string, error) {
		if navErr = b.Navigate(ctx, opts.URL); navErr != nil {
			return StepFailed, opts.URL, navErr
		}
		return StepDone, opts.URL, nil
	})
	if navErr != nil {
		return res, fmt.Errorf("navigating to %s: %w", opts.URL, navErr)
	}

	if opts.Screenshot != "" {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		r.do(ctx, "screenshot", func(ctx context.Context) (StepStatus, string, error) {
			if err := b.Screenshot(ctx, opts.Screenshot); err != nil {
				return StepFailed, opts.Screenshot, err
			}
			return StepDone, opts.Screenshot, nil
		})
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	var doc *goquery.Document
	r.do(ctx, "extract_info", func(ctx context.Context) (StepStatus, string, error) {
		html, err := b.HTML(ctx)
		if err != nil {
			return StepFailed, "", fmt.Errorf("reading page: %w", err)
		}
		doc, err = goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			return StepFailed, "", fmt.Errorf("parsing page: %w", err)
		}
		res.Info = scraper.ExtractInfo(doc)
		if res.Info.Empty() {
			return StepSkipped, "no event information found", nil
		}
		return StepDone, res.Info.Title, nil
	})

	if doc != nil {
		r.do(ctx, "find_links", func(context.Context) (StepStatus, string, error) {
			res.Links = scraper.ExternalLinks(doc)
			if res.Links.Empty() {
				return StepSkipped, "no external forms found", nil
			}
			return StepDone, "", nil
		})
	}

	if opts.Email == "" {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}
	if doc == nil {
		r.do(ctx, "fill_email", func(context.Context) (StepStatus, string, error) {
			return StepSkipped, "page content unavailable", nil
		})
		return res, nil
	}

	field, found := opts.EmailLocator.Locate(doc)
	status := r.do(ctx, "fill_email", func(ctx context.Context) (StepStatus, string, error) {
		if !found {
			return StepSkipped, "could not find email input field", nil
		}
		if err := b.Fill(ctx, field.Selector, opts.Email); err != nil {
			return StepFailed, field.Selector, err
		}
		return StepDone, field.By, nil
	})
	if status != StepDone {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return res, err
	}
	button, found := opts.SubmitLocator.Locate(doc)
	r.do(ctx, "click_submit", func(ctx context.Context) (StepStatus, string, error) {
		if !found {
			return StepSkipped, "could not find submit button", nil
		}
		if err := b.Click(ctx, button.Selector); err != nil {
			return StepFailed, button.Selector, err
		}
		res.EmailSubmitted = true
		// Give the form time to respond
		if err := b.Wait(ctx, opts.Settle); err != nil {
			return StepDone, "submitted; wait interrupted", nil
		}
		return StepDone, button.By, nil
	})

	return res, nil
}
