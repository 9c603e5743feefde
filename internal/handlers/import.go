package handlers

import (
	"net/http"

	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/workspace"
)

// ImportHandler handles HTTP requests that bring text into the editor.
type ImportHandler struct {
	importService service.ImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importService service.ImportService) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// ImportRequest represents the HTTP request payload for a JSON import.
type ImportRequest struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// ImportFileRequest represents the HTTP request payload for a workspace file import.
type ImportFileRequest struct {
	Path string `json:"path"`
}

// SectionResponse describes one section of an import.
type SectionResponse struct {
	Index      int    `json:"index"`
	Title      string `json:"title"`
	Characters int    `json:"characters"`
}

// ImportResponse represents the HTTP response payload for an import.
type ImportResponse struct {
	DocumentID     string            `json:"document_id"`
	Name           string            `json:"name"`
	Title          string            `json:"title,omitempty"`
	Markdown       string            `json:"markdown"`
	NeedsSelection bool              `json:"needs_selection"`
	Sections       []SectionResponse `json:"sections"`
}

// ClipboardRequest represents the HTTP request payload for a clipboard import.
type ClipboardRequest struct {
	Text    string `json:"text"`
	Current string `json:"current"`
	Mode    string `json:"mode"`
}

// ClipboardResponse represents the HTTP response payload for a clipboard import.
type ClipboardResponse struct {
	Markdown string       `json:"markdown"`
	Type     string       `json:"type"`
	Mode     string       `json:"mode"`
	Stats    markup.Stats `json:"stats"`
}

// FilesResponse lists importable workspace files.
type FilesResponse struct {
	Files []workspace.File `json:"files"`
}

// ImportJSON handles POST /api/import.
func (h *ImportHandler) ImportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ImportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.importService.ImportJSON(ctx, service.ImportRequest{
		Name: req.Name,
		Text: req.Text,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to import JSON")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, toImportResponse(result))
}

// ImportFile handles POST /api/import/file.
func (h *ImportHandler) ImportFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ImportFileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.importService.ImportFile(ctx, service.ImportFileRequest{Path: req.Path})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to import file")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, toImportResponse(result))
}

// ImportClipboard handles POST /api/import/clipboard.
func (h *ImportHandler) ImportClipboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ClipboardRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.importService.ImportClipboard(ctx, service.ClipboardRequest{
		Text:    req.Text,
		Current: req.Current,
		Mode:    req.Mode,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to import clipboard")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ClipboardResponse{
		Markdown: result.Markdown,
		Type:     result.Type,
		Mode:     result.Mode,
		Stats:    result.Stats,
	})
}

// ListFiles handles GET /api/files.
func (h *ImportHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	files, err := h.importService.ListFiles(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list files")
		return
	}

	writeJSON(ctx, w, http.StatusOK, FilesResponse{Files: files})
}

func toImportResponse(result service.ImportResult) ImportResponse {
	return ImportResponse{
		DocumentID:     result.DocumentID,
		Name:           result.Name,
		Title:          result.Title,
		Markdown:       result.Markdown,
		NeedsSelection: result.NeedsSelection,
		Sections:       toSectionResponses(result.Sections),
	}
}

func toSectionResponses(sections []service.SectionSummary) []SectionResponse {
	out := make([]SectionResponse, len(sections))
	for i, s := range sections {
		out[i] = SectionResponse{Index: s.Index, Title: s.Title, Characters: s.Characters}
	}
	return out
}
