package markup

import (
	"strings"
	"unicode/utf8"
)

// Stats summarises editor text for status messages.
type Stats struct {
	Characters int `json:"characters"`
	Lines      int `json:"lines"`
	HardBreaks int `json:"hard_breaks"`
}

// Measure counts characters, lines and two-space hard breaks in text.
// An empty text still has one line.
func Measure(text string) Stats {
	return Stats{
		Characters: utf8.RuneCountInString(text),
		Lines:      strings.Count(text, "\n") + 1,
		HardBreaks: strings.Count(text, "  \n"),
	}
}
