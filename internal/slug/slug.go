// Package slug derives URL slugs from post titles.
package slug

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nonWord   = regexp.MustCompile(`[^\w\s-]`)
	separator = regexp.MustCompile(`[\s_-]+`)
)

// Normalize lowercases title and collapses it into dash-separated words.
// Characters outside [A-Za-z0-9_] are dropped.
func Normalize(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonWord.ReplaceAllString(s, "")
	s = separator.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Generator makes unique-looking slugs by suffixing the normalized title with
// the base36 millisecond timestamp.
type Generator struct {
	now func() time.Time
}

// NewGenerator creates a Generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Make returns the slug for title.
func (g *Generator) Make(title string) string {
	suffix := strconv.FormatInt(g.now().UnixMilli(), 36)
	base := Normalize(title)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
