package jsonmd

import (
	"bytes"
	"encoding/json"
	"strings"
)

// NormalizeEscapes turns literal backslash escapes left inside extracted
// strings into real control characters. Paragraph breaks are replaced first
// so "\n\n" never gets processed twice.
func NormalizeEscapes(text string) string {
	text = strings.ReplaceAll(text, `\n\n`, "\n\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	return strings.ReplaceAll(text, `\t`, "\t")
}

// NormalizeLineEndings collapses CRLF to LF.
func NormalizeLineEndings(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// ExportAsJSONString encodes markdown as a single JSON string literal,
// quotes included. HTML characters are kept as-is so blockquotes and inline
// tags stay readable in the exported value.
func ExportAsJSONString(markdown string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a plain string cannot fail; invalid UTF-8 becomes U+FFFD.
	_ = enc.Encode(markdown)
	return strings.TrimSuffix(buf.String(), "\n")
}

// LooksLikeJSON reports whether text starts like a JSON object or array.
func LooksLikeJSON(text string) bool {
	trimmed := strings.TrimLeft(text, " \t\r\n\ufeff")
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}
