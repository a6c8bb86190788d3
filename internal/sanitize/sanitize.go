// Package sanitize cleans user-supplied content before it is stored.
//
// Post bodies keep a user-generated-content subset of HTML. Comments and
// post summaries are reduced to plain text.
package sanitize

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
)

// SummaryLength is the number of characters of plain text kept in a summary.
const SummaryLength = 150

// Sanitizer holds the HTML policies. It is safe for concurrent use.
type Sanitizer struct {
	rich  *bluemonday.Policy
	plain *bluemonday.Policy
}

// New builds the content policies.
func New() *Sanitizer {
	rich := bluemonday.UGCPolicy()
	rich.AllowRelativeURLs(false)
	rich.RequireNoReferrerOnLinks(true)
	rich.AddTargetBlankToFullyQualifiedLinks(true)

	return &Sanitizer{
		rich:  rich,
		plain: bluemonday.StrictPolicy(),
	}
}

// PostContent strips scripts, event handlers and unsafe URLs from a post body.
func (s *Sanitizer) PostContent(raw string) string {
	return strings.TrimSpace(s.rich.Sanitize(raw))
}

// PlainText removes all markup and returns unescaped text.
func (s *Sanitizer) PlainText(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.plain.Sanitize(raw)))
}

// Summary returns the first SummaryLength characters of the plain text of
// content followed by an ellipsis.
func (s *Sanitizer) Summary(content string) string {
	text := strings.Join(strings.Fields(s.PlainText(content)), " ")
	if utf8.RuneCountInString(text) > SummaryLength {
		text = string([]rune(text)[:SummaryLength])
	}
	return text + "..."
}
