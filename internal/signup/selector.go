package signup

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// selectorFor returns a CSS selector that addresses exactly sel's first node:
// its id when that is unique in the document, otherwise a child path of
// nth-of-type steps from the root.
func selectorFor(sel *goquery.Selection) string {
	sel = sel.First()

	if id, ok := sel.Attr("id"); ok && id != "" {
		q := idSelector(id)
		if root := documentRoot(sel); root.Find(q).Length() == 1 {
			return q
		}
	}

	var steps []string
	for cur := sel; cur.Length() > 0 && goquery.NodeName(cur) != "#document"; cur = cur.Parent() {
		tag := goquery.NodeName(cur)
		n := cur.PrevAllFiltered(tag).Length() + 1
		steps = append(steps, fmt.Sprintf("%s:nth-of-type(%d)", tag, n))
	}

	// reverse into root-first order
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return strings.Join(steps, " > ")
}

// idSelector builds an attribute selector, which unlike #id needs no escaping
// for ids that start with digits or contain punctuation.
func idSelector(id string) string {
	return `[id="` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(id) + `"]`
}

func documentRoot(sel *goquery.Selection) *goquery.Selection {
	root := sel
	for p := sel.Parent(); p.Length() > 0; p = p.Parent() {
		root = p
	}
	return root
}
