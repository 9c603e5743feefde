package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_service.go -package=mocks markdown-json-editor/internal/service DocumentService

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/storage"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500

	// CombinedIndex marks content built from all sections of a document.
	CombinedIndex = -1
)

// DocumentSummary describes a stored import session.
type DocumentSummary struct {
	ID           string
	Name         string
	Source       string
	SectionCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DocumentDetail is an import session with its section titles.
type DocumentDetail struct {
	DocumentSummary
	Markdown string
	Sections []SectionSummary
}

// SectionContent is Markdown loaded from an import session.
type SectionContent struct {
	DocumentID string
	Index      int // CombinedIndex when all sections were joined
	Title      string
	Markdown   string
}

// DocumentService manages stored import sessions.
type DocumentService interface {
	// List returns the newest sessions first. A limit of zero uses the default.
	List(ctx context.Context, limit int) ([]DocumentSummary, error)
	// Get returns one session and its section titles.
	Get(ctx context.Context, id string) (DocumentDetail, error)
	// Section loads one section's Markdown.
	Section(ctx context.Context, id string, index int) (SectionContent, error)
	// Combined loads all sections joined into one document.
	Combined(ctx context.Context, id string) (SectionContent, error)
	// Delete removes a session.
	Delete(ctx context.Context, id string) error
}

// documentService implements DocumentService.
type documentService struct {
	documents storage.DocumentStore
	sections  storage.SectionStore
	logger    *slog.Logger
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documents storage.DocumentStore, sections storage.SectionStore) DocumentService {
	return &documentService{
		documents: documents,
		sections:  sections,
		logger:    slog.Default(),
	}
}

// List returns the newest sessions first.
func (s *documentService) List(ctx context.Context, limit int) ([]DocumentSummary, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	err := validation.Errors{
		"limit": validation.Validate(limit, validation.Min(1), validation.Max(maxListLimit)),
	}.Filter()
	if err != nil {
		return nil, validationFailure(err)
	}

	records, err := s.documents.List(ctx, limit)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list documents", "error", err)
		return nil, storeError(err, "documents")
	}

	summaries := make([]DocumentSummary, len(records))
	for i, record := range records {
		summaries[i] = summaryOf(record)
	}
	return summaries, nil
}

// Get returns one session and its section titles.
func (s *documentService) Get(ctx context.Context, id string) (DocumentDetail, error) {
	if err := validateID(id); err != nil {
		return DocumentDetail{}, err
	}

	record, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return DocumentDetail{}, storeError(err, "document "+id)
	}

	sections, err := s.sections.ListByDocument(ctx, id)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list sections", "document_id", id, "error", err)
		return DocumentDetail{}, storeError(err, "sections of document "+id)
	}

	summaries := make([]SectionSummary, len(sections))
	for i, section := range sections {
		summaries[i] = SectionSummary{
			Index:      section.SectionIndex,
			Title:      section.Title,
			Characters: utf8.RuneCountInString(section.Content),
		}
	}

	return DocumentDetail{
		DocumentSummary: summaryOf(*record),
		Markdown:        record.Markdown,
		Sections:        summaries,
	}, nil
}

// Section loads one section's Markdown and remembers it as the document's
// current text.
func (s *documentService) Section(ctx context.Context, id string, index int) (SectionContent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateID(id); err != nil {
		return SectionContent{}, err
	}
	err := validation.Errors{
		"index": validation.Validate(index, validation.Min(0)),
	}.Filter()
	if err != nil {
		return SectionContent{}, validationFailure(err)
	}

	section, err := s.sections.GetByIndex(ctx, id, index)
	if err != nil {
		return SectionContent{}, storeError(err, fmt.Sprintf("section %d of document %s", index, id))
	}

	if err := s.documents.UpdateMarkdown(ctx, id, section.Content); err != nil {
		logger.ErrorContext(ctx, "failed to record selected section", "document_id", id, "index", index, "error", err)
		return SectionContent{}, storeError(err, "document "+id)
	}

	logger.InfoContext(ctx, "section loaded", "document_id", id, "index", index, "title", section.Title)
	return SectionContent{
		DocumentID: id,
		Index:      index,
		Title:      section.Title,
		Markdown:   section.Content,
	}, nil
}

// Combined joins all sections, each introduced by a comment naming its
// path. A document without sections returns its extracted Markdown.
func (s *documentService) Combined(ctx context.Context, id string) (SectionContent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := validateID(id); err != nil {
		return SectionContent{}, err
	}

	records, err := s.sections.ListByDocument(ctx, id)
	if err != nil {
		return SectionContent{}, storeError(err, "sections of document "+id)
	}

	if len(records) == 0 {
		doc, err := s.documents.GetByID(ctx, id)
		if err != nil {
			return SectionContent{}, storeError(err, "document "+id)
		}
		return SectionContent{
			DocumentID: id,
			Index:      CombinedIndex,
			Title:      doc.Name,
			Markdown:   doc.Markdown,
		}, nil
	}

	sections := make([]jsonmd.MarkdownSection, len(records))
	for i, record := range records {
		sections[i] = jsonmd.MarkdownSection{Title: record.Title, Content: record.Content}
	}
	combined := jsonmd.CombineSections(sections)

	if err := s.documents.UpdateMarkdown(ctx, id, combined); err != nil {
		logger.ErrorContext(ctx, "failed to record combined sections", "document_id", id, "error", err)
		return SectionContent{}, storeError(err, "document "+id)
	}

	logger.InfoContext(ctx, "sections combined", "document_id", id, "sections", len(records))
	return SectionContent{
		DocumentID: id,
		Index:      CombinedIndex,
		Title:      fmt.Sprintf("All sections (%d)", len(records)),
		Markdown:   combined,
	}, nil
}

// Delete removes a session.
func (s *documentService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := s.documents.Delete(ctx, id); err != nil {
		return storeError(err, "document "+id)
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "document deleted", "document_id", id)
	return nil
}

func validateID(id string) error {
	return validationFailure(validation.Errors{
		"id": validation.Validate(id, validation.Required, isUUID),
	}.Filter())
}

func summaryOf(record storage.DocumentRecord) DocumentSummary {
	return DocumentSummary{
		ID:           record.ID,
		Name:         record.Name,
		Source:       record.Source,
		SectionCount: record.SectionCount,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
