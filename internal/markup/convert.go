package markup

import (
	"log/slog"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

var htmlTagPattern = regexp.MustCompile(`(?i)<(p|div|br|hr|ul|ol|li|h[1-6]|strong|em|b|i|u|a|span|table|tr|td|th|img|blockquote|pre|code)(\s[^>]*)?/?>`)

// ContainsHTML reports whether text carries block or inline HTML markup.
func ContainsHTML(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// HTMLToMarkdown converts HTML fragments embedded in imported text into
// Markdown. Text without HTML, or HTML the converter rejects, is returned
// unchanged.
func HTMLToMarkdown(text string) string {
	if !ContainsHTML(text) {
		return text
	}
	converted, err := htmltomarkdown.ConvertString(text)
	if err != nil {
		slog.Debug("html to markdown conversion failed", "error", err)
		return text
	}
	return strings.TrimSpace(converted)
}
