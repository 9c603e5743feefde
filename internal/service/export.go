package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_export_service.go -package=mocks markdown-json-editor/internal/service ExportService

import (
	"context"
	"log/slog"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/document"
	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
)

// ExportRequest carries editor text to export as a JSON string literal.
// SavePath, when set, is a workspace-relative file to write the literal to.
type ExportRequest struct {
	Markdown string
	SavePath string
}

// ExportResult is an exported JSON string literal.
type ExportResult struct {
	JSON    string
	Stats   markup.Stats
	SavedTo string
}

// DocumentExportRequest carries editor text to export as a structured
// JSON document.
type DocumentExportRequest struct {
	Markdown string
	SavePath string
}

// DocumentExportResult is a structured JSON document built from Markdown.
type DocumentExportResult struct {
	Document jsonmd.JsonContent
	JSON     string
	SavedTo  string
}

// ExportService converts editor text back to JSON.
type ExportService interface {
	// ExportString encodes the text as a single JSON string literal.
	ExportString(ctx context.Context, req ExportRequest) (ExportResult, error)
	// ExportDocument splits the text into title, intro and sections.
	ExportDocument(ctx context.Context, req DocumentExportRequest) (DocumentExportResult, error)
}

// exportService implements ExportService.
type exportService struct {
	builder  *document.Builder
	files    Workspace
	maxBytes int
	logger   *slog.Logger
}

// NewExportService creates a new ExportService.
func NewExportService(builder *document.Builder, files Workspace, maxBytes int) ExportService {
	return &exportService{
		builder:  builder,
		files:    files,
		maxBytes: maxBytes,
		logger:   slog.Default(),
	}
}

// ExportString encodes the text as a single JSON string literal. Windows
// line endings are collapsed first so the literal only carries \n.
func (s *exportService) ExportString(ctx context.Context, req ExportRequest) (ExportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkSize(req.Markdown, s.maxBytes); err != nil {
		return ExportResult{}, err
	}

	text := jsonmd.NormalizeLineEndings(req.Markdown)
	result := ExportResult{
		JSON:  jsonmd.ExportAsJSONString(text),
		Stats: markup.Measure(text),
	}

	if req.SavePath != "" {
		if err := s.files.Write(ctx, req.SavePath, []byte(result.JSON)); err != nil {
			logger.ErrorContext(ctx, "failed to save export", "path", req.SavePath, "error", err)
			return ExportResult{}, workspaceError(err, "save_path")
		}
		result.SavedTo = req.SavePath
	}

	logger.InfoContext(ctx, "markdown exported", "characters", result.Stats.Characters, "lines", result.Stats.Lines, "saved_to", result.SavedTo)
	return result, nil
}

// ExportDocument splits the text into title, intro and sections.
func (s *exportService) ExportDocument(ctx context.Context, req DocumentExportRequest) (DocumentExportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := checkSize(req.Markdown, s.maxBytes); err != nil {
		return DocumentExportResult{}, err
	}

	content := s.builder.Build(req.Markdown)
	data, err := document.Encode(content)
	if err != nil {
		logger.ErrorContext(ctx, "failed to encode document", "error", err)
		return DocumentExportResult{}, WrapError(err, "failed to encode document")
	}

	result := DocumentExportResult{
		Document: content,
		JSON:     string(data),
	}

	if req.SavePath != "" {
		if err := s.files.Write(ctx, req.SavePath, data); err != nil {
			logger.ErrorContext(ctx, "failed to save document export", "path", req.SavePath, "error", err)
			return DocumentExportResult{}, workspaceError(err, "save_path")
		}
		result.SavedTo = req.SavePath
	}

	logger.InfoContext(ctx, "document exported", "sections", len(content.Sections), "saved_to", result.SavedTo)
	return result, nil
}
