package handlers

import (
	"net/http"

	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
)

// EditorHandler handles HTTP requests for the live preview and insert helpers.
type EditorHandler struct {
	editorService service.EditorService
}

// NewEditorHandler creates a new EditorHandler.
func NewEditorHandler(editorService service.EditorService) *EditorHandler {
	return &EditorHandler{
		editorService: editorService,
	}
}

// PreviewRequest represents the HTTP request payload for a preview.
type PreviewRequest struct {
	Markdown string `json:"markdown"`
}

// PreviewResponse represents the HTTP response payload for a preview.
type PreviewResponse struct {
	HTML  string       `json:"html"`
	Title string       `json:"title"`
	Stats markup.Stats `json:"stats"`
}

// ImageRequest represents the HTTP request payload for an image snippet.
type ImageRequest struct {
	Path  string `json:"path"`
	Alt   string `json:"alt"`
	Align string `json:"align"`
	Width string `json:"width"`
}

// ImageResponse carries the Markdown to insert.
type ImageResponse struct {
	Markdown string `json:"markdown"`
}

// Preview handles POST /api/preview.
func (h *EditorHandler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PreviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.editorService.Preview(ctx, req.Markdown)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to render preview")
		return
	}

	writeJSON(ctx, w, http.StatusOK, PreviewResponse{
		HTML:  result.HTML,
		Title: result.Title,
		Stats: result.Stats,
	})
}

// Image handles POST /api/image.
func (h *EditorHandler) Image(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ImageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snippet, err := h.editorService.ImageSnippet(ctx, service.ImageRequest{
		Path:  req.Path,
		Alt:   req.Alt,
		Align: req.Align,
		Width: req.Width,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build image snippet")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ImageResponse{Markdown: snippet})
}
