package service

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
)

// Clipboard merge modes.
const (
	ModeReplace = "replace"
	ModeAppend  = "append"
)

// Clipboard payload types.
const (
	ContentJSON        = "json"
	ContentText        = "text"
	ContentTextEscaped = "text-escaped"
)

// ClipboardRequest carries a clipboard payload and the editor text it
// should be merged into.
type ClipboardRequest struct {
	Text    string
	Current string
	Mode    string // ModeReplace (default) or ModeAppend
}

// ClipboardResult is the editor text after a clipboard import.
type ClipboardResult struct {
	Markdown string
	Type     string
	Mode     string
	Stats    markup.Stats
}

// ImportClipboard converts a clipboard payload and merges it with the
// current editor text. JSON payloads go through content extraction; plain
// text only has its literal escapes resolved.
func (s *importService) ImportClipboard(ctx context.Context, req ClipboardRequest) (ClipboardResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkSize(req.Text, s.maxBytes); err != nil {
		return ClipboardResult{}, err
	}
	err := validation.Errors{
		"text": validation.Validate(req.Text, notBlank),
		"mode": validation.Validate(req.Mode, validation.In(ModeReplace, ModeAppend)),
	}.Filter()
	if err != nil {
		logger.WarnContext(ctx, "invalid clipboard request", "error", err)
		return ClipboardResult{}, validationFailure(err)
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeReplace
	}

	var content, kind string
	switch {
	case jsonmd.LooksLikeJSON(req.Text):
		content = s.extractor.ExtractContent(req.Text)
		kind = ContentJSON
	case strings.Contains(req.Text, `\n`):
		content = jsonmd.NormalizeEscapes(req.Text)
		kind = ContentTextEscaped
	default:
		content = jsonmd.NormalizeEscapes(req.Text)
		kind = ContentText
	}

	if strings.TrimSpace(content) == "" {
		return ClipboardResult{}, &ValidationError{Field: "text", Message: "no usable content found"}
	}

	if mode == ModeAppend && strings.TrimSpace(req.Current) != "" {
		content = req.Current + "\n\n" + content
	}

	stats := markup.Measure(content)
	logger.InfoContext(ctx, "clipboard imported", "type", kind, "mode", mode, "characters", stats.Characters, "lines", stats.Lines)

	return ClipboardResult{
		Markdown: content,
		Type:     kind,
		Mode:     mode,
		Stats:    stats,
	}, nil
}
