package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_editor_service.go -package=mocks markdown-json-editor/internal/service EditorService

import (
	"context"
	"log/slog"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/markup"
)

var widthPattern = regexp.MustCompile(`^\d+(px|%|em|rem)?$`)

// PreviewResult is rendered editor text.
type PreviewResult struct {
	HTML  string
	Title string
	Stats markup.Stats
}

// ImageRequest describes an image to reference from the editor text.
type ImageRequest struct {
	Path  string
	Alt   string
	Align string
	Width string
}

// EditorService backs the live preview and the editor's insert helpers.
type EditorService interface {
	// Preview renders Markdown to HTML.
	Preview(ctx context.Context, markdown string) (PreviewResult, error)
	// ImageSnippet builds the Markdown that references an image.
	ImageSnippet(ctx context.Context, req ImageRequest) (string, error)
}

// editorService implements EditorService.
type editorService struct {
	renderer *markup.Renderer
	maxBytes int
	logger   *slog.Logger
}

// NewEditorService creates a new EditorService.
func NewEditorService(renderer *markup.Renderer, maxBytes int) EditorService {
	return &editorService{
		renderer: renderer,
		maxBytes: maxBytes,
		logger:   slog.Default(),
	}
}

// Preview renders Markdown to HTML along with its title and statistics.
func (s *editorService) Preview(ctx context.Context, markdown string) (PreviewResult, error) {
	if err := checkSize(markdown, s.maxBytes); err != nil {
		return PreviewResult{}, err
	}

	source := []byte(markdown)
	html, err := s.renderer.Render(source)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to render preview", "error", err)
		return PreviewResult{}, WrapError(err, "failed to render preview")
	}

	return PreviewResult{
		HTML:  html,
		Title: s.renderer.Title(source),
		Stats: markup.Measure(markdown),
	}, nil
}

// ImageSnippet builds the Markdown that references an image.
func (s *editorService) ImageSnippet(ctx context.Context, req ImageRequest) (string, error) {
	err := validation.Errors{
		"path":  validation.Validate(req.Path, notBlank),
		"align": validation.Validate(req.Align, validation.In("left", "right", "center")),
		"width": validation.Validate(req.Width, validation.Match(widthPattern)),
	}.Filter()
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid image request", "error", err)
		return "", validationFailure(err)
	}

	return markup.ImageMarkdown(req.Path, markup.ImageOptions{
		Alt:   req.Alt,
		Align: req.Align,
		Width: req.Width,
	}), nil
}
