package event

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is the sentinel wrapped by every ValidationError.
var ErrValidation = errors.New("invalid event")

// Descriptor describes a single calendar event
type Descriptor struct {
	Title          string    `json:"title" validate:"required"`
	Start          time.Time `json:"start" validate:"required"`
	End            time.Time `json:"end" validate:"required"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	URL            string    `json:"url" validate:"required,url"`
	Organizer      string    `json:"organizer,omitempty"`
	OrganizerEmail string    `json:"organizer_email,omitempty" validate:"omitempty,email"`
	Categories     []string  `json:"categories,omitempty"`
}

// ValidationError reports which fields of a Descriptor are unusable
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%v: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%v: %s (%s)", ErrValidation, e.Reason, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields, the URL format and that Start precedes End.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Fields: []string{"title"}, Reason: "title is empty"}
	}

	if err := validate.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validating event: %w", err)
		}
		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &ValidationError{Fields: fields, Reason: "missing or malformed fields"}
	}

	if !d.Start.Before(d.End) {
		return &ValidationError{
			Fields: []string{"start", "end"},
			Reason: fmt.Sprintf("start %s must precede end %s",
				d.Start.UTC().Format(time.RFC3339), d.End.UTC().Format(time.RFC3339)),
		}
	}

	return nil
}

// UTC returns a copy with Start and End normalised to UTC
func (d Descriptor) UTC() Descriptor {
	d.Start = d.Start.UTC()
	d.End = d.End.UTC()
	if d.Categories != nil {
		d.Categories = append([]string(nil), d.Categories...)
	}
	return d
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a file-name stem from the title, e.g. "ai-engineer-summit-2025".
func (d Descriptor) Slug() string {
	slug := nonSlug.ReplaceAllString(strings.ToLower(d.Title), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "event"
	}
	return slug
}

// Duration returns End - Start
func (d Descriptor) Duration() time.Duration {
	return d.End.Sub(d.Start)
}
