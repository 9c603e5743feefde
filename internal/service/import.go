package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_workspace.go -package=mocks markdown-json-editor/internal/service Workspace
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_import_service.go -package=mocks markdown-json-editor/internal/service ImportService

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/storage"
	"markdown-json-editor/internal/workspace"
)

// Document sources recorded with every import.
const (
	SourceUpload    = "upload"
	SourceFile      = "file"
	SourceClipboard = "clipboard"
)

const defaultDocumentName = "untitled.json"

// Workspace is the file access the import and export flows need.
// This interface is defined from the service layer's perspective (consumer-first).
type Workspace interface {
	// Scan lists importable files.
	Scan(ctx context.Context) ([]workspace.File, error)
	// Read returns a file's contents by relative path.
	Read(ctx context.Context, relPath string) ([]byte, error)
	// Write stores data at a relative path.
	Write(ctx context.Context, relPath string, data []byte) error
}

// ImportRequest carries JSON text picked by the user.
type ImportRequest struct {
	Name string
	Text string
}

// ImportFileRequest names a workspace file to import.
type ImportFileRequest struct {
	Path string
}

// SectionSummary describes one section without its content.
type SectionSummary struct {
	Index      int
	Title      string
	Characters int
}

// ImportResult is the outcome of a JSON import. When more than one section
// was found NeedsSelection is set and Markdown stays empty until one is
// picked through DocumentService.
type ImportResult struct {
	DocumentID     string
	Name           string
	Title          string
	Markdown       string
	Sections       []SectionSummary
	NeedsSelection bool
}

// ImportService turns JSON text, workspace files and clipboard payloads
// into editor Markdown.
type ImportService interface {
	// ImportJSON extracts Markdown from JSON text and stores the import session.
	ImportJSON(ctx context.Context, req ImportRequest) (ImportResult, error)
	// ImportFile imports a JSON file from the workspace.
	ImportFile(ctx context.Context, req ImportFileRequest) (ImportResult, error)
	// ImportClipboard converts a clipboard payload and merges it with the current text.
	ImportClipboard(ctx context.Context, req ClipboardRequest) (ClipboardResult, error)
	// ListFiles lists the workspace files that can be imported.
	ListFiles(ctx context.Context) ([]workspace.File, error)
}

// importService implements ImportService.
type importService struct {
	extractor *jsonmd.Extractor
	documents storage.DocumentStore
	sections  storage.SectionStore
	files     Workspace
	maxBytes  int
	logger    *slog.Logger
}

// NewImportService creates a new ImportService. maxBytes caps the size of
// imported text; zero disables the cap.
func NewImportService(extractor *jsonmd.Extractor, documents storage.DocumentStore, sections storage.SectionStore, files Workspace, maxBytes int) ImportService {
	return &importService{
		extractor: extractor,
		documents: documents,
		sections:  sections,
		files:     files,
		maxBytes:  maxBytes,
		logger:    slog.Default(),
	}
}

// ImportJSON extracts Markdown from JSON text and stores the import session.
func (s *importService) ImportJSON(ctx context.Context, req ImportRequest) (ImportResult, error) {
	if err := checkSize(req.Text, s.maxBytes); err != nil {
		return ImportResult{}, err
	}
	err := validation.Errors{
		"text": validation.Validate(req.Text, notBlank),
	}.Filter()
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid import request", "error", err)
		return ImportResult{}, validationFailure(err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultDocumentName
	}
	return s.importText(ctx, name, SourceUpload, req.Text)
}

// ImportFile imports a JSON file from the workspace.
func (s *importService) ImportFile(ctx context.Context, req ImportFileRequest) (ImportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	err := validation.Errors{
		"path": validation.Validate(req.Path, notBlank),
	}.Filter()
	if err != nil {
		return ImportResult{}, validationFailure(err)
	}

	data, err := s.files.Read(ctx, req.Path)
	if err != nil {
		logger.WarnContext(ctx, "failed to read workspace file", "path", req.Path, "error", err)
		return ImportResult{}, workspaceError(err, "path")
	}
	if !utf8.Valid(data) {
		return ImportResult{}, &ValidationError{Field: "path", Message: "file is not UTF-8 text"}
	}

	text := strings.TrimPrefix(string(data), "\ufeff")
	if strings.TrimSpace(text) == "" {
		return ImportResult{}, &ValidationError{Field: "path", Message: "file is empty"}
	}

	name := path.Base(filepath.ToSlash(req.Path))
	return s.importText(ctx, name, SourceFile, text)
}

// importText runs the import flow: several sections wait for a selection,
// a single section is loaded directly and no sections fall back to whole
// document extraction.
func (s *importService) importText(ctx context.Context, name, source, text string) (ImportResult, error) {
	logger := contextutil.LoggerFromContext(ctx)

	found := s.extractor.ExtractSections(text)
	result := ImportResult{
		Name:     name,
		Sections: summarize(found),
	}

	switch len(found) {
	case 0:
		result.Markdown = s.extractor.ExtractContent(text)
		result.Title = name
	case 1:
		result.Markdown = found[0].Content
		result.Title = found[0].Title
	default:
		result.NeedsSelection = true
	}

	doc := &storage.DocumentRecord{
		Name:     name,
		Source:   source,
		Raw:      text,
		Markdown: result.Markdown,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		logger.ErrorContext(ctx, "failed to store document", "name", name, "error", err)
		return ImportResult{}, WrapError(err, "failed to store document")
	}

	if len(found) > 0 {
		records := make([]storage.SectionRecord, len(found))
		for i, section := range found {
			records[i] = storage.SectionRecord{Title: section.Title, Content: section.Content}
		}
		if err := s.sections.ReplaceAll(ctx, doc.ID, records); err != nil {
			logger.ErrorContext(ctx, "failed to store sections", "document_id", doc.ID, "error", err)
			if delErr := s.documents.Delete(ctx, doc.ID); delErr != nil {
				logger.WarnContext(ctx, "failed to remove partial import", "document_id", doc.ID, "error", delErr)
			}
			return ImportResult{}, WrapError(err, "failed to store sections")
		}
	}

	result.DocumentID = doc.ID
	logger.InfoContext(ctx, "json imported",
		"document_id", doc.ID,
		"name", name,
		"source", source,
		"sections", len(found),
		"needs_selection", result.NeedsSelection,
	)
	return result, nil
}

// ListFiles lists the workspace files that can be imported.
func (s *importService) ListFiles(ctx context.Context) ([]workspace.File, error) {
	files, err := s.files.Scan(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to scan workspace", "error", err)
		return nil, WrapError(err, "failed to list workspace files")
	}
	return files, nil
}

func summarize(sections []jsonmd.MarkdownSection) []SectionSummary {
	summaries := make([]SectionSummary, len(sections))
	for i, section := range sections {
		summaries[i] = SectionSummary{
			Index:      i,
			Title:      section.Title,
			Characters: utf8.RuneCountInString(section.Content),
		}
	}
	return summaries
}
