package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizer_PostContent(t *testing.T) {
	s := New()

	tests := []struct {
		name        string
		in          string
		contains    []string
		notContains []string
	}{
		{
			name:     "keeps formatting",
			in:       "<p>Hello <strong>world</strong></p>",
			contains: []string{"<p>", "<strong>world</strong>"},
		},
		{
			name:        "drops script",
			in:          `<p>hi</p><script>alert(1)</script>`,
			contains:    []string{"<p>hi</p>"},
			notContains: []string{"script", "alert"},
		},
		{
			name:        "drops event handlers",
			in:          `<img src="https://example.com/a.png" onerror="alert(1)">`,
			notContains: []string{"onerror"},
		},
		{
			name:        "drops javascript urls",
			in:          `<a href="javascript:alert(1)">x</a>`,
			notContains: []string{"javascript:"},
		},
		{
			name:     "external links get noreferrer",
			in:       `<a href="https://example.com">x</a>`,
			contains: []string{"noreferrer", `target="_blank"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.PostContent(tt.in)
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, c := range tt.notContains {
				assert.NotContains(t, got, c)
			}
		})
	}
}

func TestSanitizer_PlainText(t *testing.T) {
	s := New()

	assert.Equal(t, "nice post", s.PlainText("<b>nice</b> post"))
	assert.Equal(t, "a & b", s.PlainText("a & b"))
	assert.Equal(t, "", s.PlainText("<script>alert(1)</script>"))
}

func TestSanitizer_Summary(t *testing.T) {
	s := New()

	t.Run("short content", func(t *testing.T) {
		assert.Equal(t, "Hello world...", s.Summary("<p>Hello</p>\n<p>world</p>"))
	})

	t.Run("long content is truncated", func(t *testing.T) {
		got := s.Summary(strings.Repeat("ab ", 100))
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.Equal(t, SummaryLength+3, utf8.RuneCountInString(got))
	})

	t.Run("multibyte content", func(t *testing.T) {
		got := s.Summary(strings.Repeat("é", 200))
		assert.Equal(t, strings.Repeat("é", SummaryLength)+"...", got)
	})
}
