package signup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Match is an element found by a Locator
type Match struct {
	// Selector addresses the element in the live page
	Selector string
	// By names the strategy that found it
	By string
}

// Locator finds one element in a parsed page. ok is false when nothing matched.
type Locator interface {
	Locate(doc *goquery.Document) (m Match, ok bool)
	String() string
}

// CSS matches the first element selected by a CSS selector.
type CSS string

func (c CSS) Locate(doc *goquery.Document) (Match, bool) {
	sel := doc.Find(string(c)).First()
	if sel.Length() == 0 {
		return Match{}, false
	}
	return Match{Selector: selectorFor(sel), By: c.String()}, true
}

func (c CSS) String() string {
	return "css(" + string(c) + ")"
}

// AttrContains matches the first Tag element whose Attr contains Substr,
// ignoring case. Inputs that take no typed text, such as hidden fields and
// checkboxes, are never matched.
type AttrContains struct {
	Tag    string
	Attr   string
	Substr string
}

func (a AttrContains) Locate(doc *goquery.Document) (Match, bool) {
	needle := strings.ToLower(a.Substr)
	found := doc.Find(a.Tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		if !fillable(s) {
			return false
		}
		v, ok := s.Attr(a.Attr)
		return ok && strings.Contains(strings.ToLower(v), needle)
	}).First()
	if found.Length() == 0 {
		return Match{}, false
	}
	return Match{Selector: selectorFor(found), By: a.String()}, true
}

func (a AttrContains) String() string {
	return fmt.Sprintf("%s[%s*=%q i]", a.Tag, a.Attr, a.Substr)
}

// LabelText matches the input belonging to the first label whose text
// contains Substr, either through the label's for attribute or by nesting.
type LabelText string

func (l LabelText) Locate(doc *goquery.Document) (Match, bool) {
	needle := strings.ToLower(string(l))
	var m Match
	var ok bool

	doc.Find("label").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(label.Text()), needle) {
			return true
		}
		input := label.Find("input, textarea").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return fillable(s)
		}).First()
		if id, has := label.Attr("for"); has && id != "" {
			if byID := doc.Find(idSelector(id)).First(); byID.Length() > 0 {
				input = byID
			}
		}
		if input.Length() == 0 || !fillable(input) {
			return true
		}
		m, ok = Match{Selector: selectorFor(input), By: l.String()}, true
		return false
	})

	return m, ok
}

func (l LabelText) String() string {
	return fmt.Sprintf("label(%q)", string(l))
}

// unfillable lists input types that cannot hold an email address
var unfillable = map[string]bool{
	"hidden":   true,
	"submit":   true,
	"button":   true,
	"image":    true,
	"reset":    true,
	"checkbox": true,
	"radio":    true,
	"file":     true,
}

// fillable reports whether s is a text entry control a user could type into.
func fillable(s *goquery.Selection) bool {
	if !s.Is("input") {
		return true
	}
	return !unfillable[strings.ToLower(strings.TrimSpace(s.AttrOr("type", "text")))]
}

// SubmitNear finds the submit control belonging to the element Field
// locates: a submit button or input in the same form, then any button in
// that form, then the first button after the field.
type SubmitNear struct {
	Field Locator
}

func (s SubmitNear) Locate(doc *goquery.Document) (Match, bool) {
	field, ok := s.Field.Locate(doc)
	if !ok {
		return Match{}, false
	}
	node := doc.Find(field.Selector).First()

	if form := node.Closest("form"); form.Length() > 0 {
		for _, q := range []string{`button[type="submit"], input[type="submit"]`, "button"} {
			if btn := form.Find(q).First(); btn.Length() > 0 {
				return Match{Selector: selectorFor(btn), By: s.String()}, true
			}
		}
	}

	if btn := node.NextAllFiltered("button").First(); btn.Length() > 0 {
		return Match{Selector: selectorFor(btn), By: s.String()}, true
	}
	if btn := node.Parent().Find("button").First(); btn.Length() > 0 {
		return Match{Selector: selectorFor(btn), By: s.String()}, true
	}
	return Match{}, false
}

func (s SubmitNear) String() string {
	return "submit-near(" + s.Field.String() + ")"
}

// Chain tries each locator in order and returns the first match.
type Chain []Locator

func (c Chain) Locate(doc *goquery.Document) (Match, bool) {
	for _, l := range c {
		if m, ok := l.Locate(doc); ok {
			return m, true
		}
	}
	return Match{}, false
}

func (c Chain) String() string {
	names := make([]string, len(c))
	for i, l := range c {
		names[i] = l.String()
	}
	return strings.Join(names, " | ")
}

// EmailField is the default strategy for the email input.
func EmailField() Locator {
	return Chain{
		CSS(`input[type="email"]`),
		AttrContains{Tag: "input", Attr: "placeholder", Substr: "email"},
		AttrContains{Tag: "input", Attr: "name", Substr: "email"},
		AttrContains{Tag: "input", Attr: "id", Substr: "email"},
		LabelText("email"),
	}
}

// SubmitButton is the default strategy for the submit control.
func SubmitButton(field Locator) Locator {
	return Chain{
		SubmitNear{Field: field},
		CSS(`button[type="submit"]`),
		CSS(`input[type="submit"]`),
		CSS("button"),
	}
}
