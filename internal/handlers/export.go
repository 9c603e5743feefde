package handlers

import (
	"net/http"

	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
)

// ExportHandler handles HTTP requests that turn editor text into JSON.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportRequest represents the HTTP request payload for both exports.
type ExportRequest struct {
	Markdown string `json:"markdown"`
	SavePath string `json:"save_path,omitempty"`
}

// ExportResponse represents the HTTP response payload for a string export.
type ExportResponse struct {
	JSON    string       `json:"json"`
	Stats   markup.Stats `json:"stats"`
	SavedTo string       `json:"saved_to,omitempty"`
}

// DocumentExportResponse represents the HTTP response payload for a document export.
type DocumentExportResponse struct {
	Document jsonmd.JsonContent `json:"document"`
	JSON     string             `json:"json"`
	SavedTo  string             `json:"saved_to,omitempty"`
}

// ExportString handles POST /api/export.
func (h *ExportHandler) ExportString(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.exportService.ExportString(ctx, service.ExportRequest{
		Markdown: req.Markdown,
		SavePath: req.SavePath,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export markdown")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ExportResponse{
		JSON:    result.JSON,
		Stats:   result.Stats,
		SavedTo: result.SavedTo,
	})
}

// ExportDocument handles POST /api/export/document.
func (h *ExportHandler) ExportDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.exportService.ExportDocument(ctx, service.DocumentExportRequest{
		Markdown: req.Markdown,
		SavePath: req.SavePath,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to export document")
		return
	}

	writeJSON(ctx, w, http.StatusOK, DocumentExportResponse{
		Document: result.Document,
		JSON:     result.JSON,
		SavedTo:  result.SavedTo,
	})
}
