package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"markdown-json-editor/internal/contextutil"
	"markdown-json-editor/internal/service"
)

// DocumentHandler handles HTTP requests for stored import sessions.
type DocumentHandler struct {
	documentService service.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

// DocumentResponse describes an import session.
type DocumentResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Source       string    `json:"source"`
	SectionCount int       `json:"section_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DocumentsResponse lists import sessions.
type DocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// DocumentDetailResponse is an import session with its section titles.
type DocumentDetailResponse struct {
	DocumentResponse
	Markdown string            `json:"markdown"`
	Sections []SectionResponse `json:"sections"`
}

// SectionContentResponse carries Markdown loaded from a session.
type SectionContentResponse struct {
	DocumentID string `json:"document_id"`
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Markdown   string `json:"markdown"`
}

// List handles GET /api/documents.
func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid limit", "limit", raw)
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	docs, err := h.documentService.List(ctx, limit)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list documents")
		return
	}

	resp := DocumentsResponse{Documents: make([]DocumentResponse, len(docs))}
	for i, doc := range docs {
		resp.Documents[i] = toDocumentResponse(doc)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Get handles GET /api/documents/{id}.
func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	detail, err := h.documentService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load document")
		return
	}

	writeJSON(ctx, w, http.StatusOK, DocumentDetailResponse{
		DocumentResponse: toDocumentResponse(detail.DocumentSummary),
		Markdown:         detail.Markdown,
		Sections:         toSectionResponses(detail.Sections),
	})
}

// Section handles GET /api/documents/{id}/sections/{index}.
func (h *DocumentHandler) Section(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "invalid section index", "index", chi.URLParam(r, "index"))
		writeError(w, http.StatusBadRequest, "Invalid section index")
		return
	}

	content, err := h.documentService.Section(ctx, chi.URLParam(r, "id"), index)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to load section")
		return
	}

	writeJSON(ctx, w, http.StatusOK, toSectionContentResponse(content))
}

// Combined handles GET /api/documents/{id}/combined.
func (h *DocumentHandler) Combined(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	content, err := h.documentService.Combined(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to combine sections")
		return
	}

	writeJSON(ctx, w, http.StatusOK, toSectionContentResponse(content))
}

// Delete handles DELETE /api/documents/{id}.
func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.documentService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete document")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDocumentResponse(doc service.DocumentSummary) DocumentResponse {
	return DocumentResponse{
		ID:           doc.ID,
		Name:         doc.Name,
		Source:       doc.Source,
		SectionCount: doc.SectionCount,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func toSectionContentResponse(content service.SectionContent) SectionContentResponse {
	return SectionContentResponse{
		DocumentID: content.DocumentID,
		Index:      content.Index,
		Title:      content.Title,
		Markdown:   content.Markdown,
	}
}
