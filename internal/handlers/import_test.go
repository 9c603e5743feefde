package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/service/mocks"
	"markdown-json-editor/internal/workspace"
)

func TestNewImportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImportService := mocks.NewMockImportService(ctrl)

	handler := NewImportHandler(mockImportService)
	if handler == nil {
		t.Fatal("NewImportHandler() returned nil")
	}
	if handler.importService != mockImportService {
		t.Error("NewImportHandler() importService not set correctly")
	}
}

func TestImportHandler_ImportJSON(t *testing.T) {
	tests := []struct {
		name          string
		body          any
		mockSetup     func(*mocks.MockImportService)
		wantStatus    int
		checkResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "sections need selection",
			body: ImportRequest{Name: "deck.json", Text: `{"slides":[]}`},
			mockSetup: func(m *mocks.MockImportService) {
				m.EXPECT().
					ImportJSON(gomock.Any(), service.ImportRequest{Name: "deck.json", Text: `{"slides":[]}`}).
					Return(service.ImportResult{
						DocumentID:     "doc-1",
						Name:           "deck.json",
						NeedsSelection: true,
						Sections: []service.SectionSummary{
							{Index: 0, Title: "slides[0]", Characters: 30},
							{Index: 1, Title: "slides[1]", Characters: 40},
						},
					}, nil)
			},
			wantStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeResponse[ImportResponse](t, w)
				if resp.DocumentID != "doc-1" || !resp.NeedsSelection || len(resp.Sections) != 2 {
					t.Errorf("response = %+v", resp)
				}
				if resp.Sections[1].Title != "slides[1]" || resp.Sections[1].Characters != 40 {
					t.Errorf("section = %+v", resp.Sections[1])
				}
			},
		},
		{
			name:       "invalid JSON body",
			body:       "invalid json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "validation error",
			body: ImportRequest{Text: " "},
			mockSetup: func(m *mocks.MockImportService) {
				m.EXPECT().ImportJSON(gomock.Any(), gomock.Any()).
					Return(service.ImportResult{}, &service.ValidationError{Field: "text", Message: "cannot be blank"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "too large",
			body: ImportRequest{Text: "{}"},
			mockSetup: func(m *mocks.MockImportService) {
				m.EXPECT().ImportJSON(gomock.Any(), gomock.Any()).
					Return(service.ImportResult{}, service.ErrPayloadTooLarge)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockImportService := mocks.NewMockImportService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockImportService)
			}

			handler := NewImportHandler(mockImportService)
			w := httptest.NewRecorder()
			handler.ImportJSON(w, newJSONRequest(t, http.MethodPost, "/api/import", tt.body))

			if w.Code != tt.wantStatus {
				t.Errorf("ImportJSON() status = %v, want %v (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestImportHandler_ImportFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImportService := mocks.NewMockImportService(ctrl)
	handler := NewImportHandler(mockImportService)

	mockImportService.EXPECT().
		ImportFile(gomock.Any(), service.ImportFileRequest{Path: "a.json"}).
		Return(service.ImportResult{DocumentID: "doc-1", Name: "a.json", Title: "content", Markdown: "# A"}, nil)

	w := httptest.NewRecorder()
	handler.ImportFile(w, newJSONRequest(t, http.MethodPost, "/api/import/file", ImportFileRequest{Path: "a.json"}))

	if w.Code != http.StatusCreated {
		t.Fatalf("ImportFile() status = %v, want %v", w.Code, http.StatusCreated)
	}
	resp := decodeResponse[ImportResponse](t, w)
	if resp.Markdown != "# A" || resp.Title != "content" || resp.Sections == nil {
		t.Errorf("ImportFile() response = %+v", resp)
	}

	mockImportService.EXPECT().
		ImportFile(gomock.Any(), service.ImportFileRequest{Path: "missing.json"}).
		Return(service.ImportResult{}, service.WrapError(service.ErrNotFound, "file"))

	w = httptest.NewRecorder()
	handler.ImportFile(w, newJSONRequest(t, http.MethodPost, "/api/import/file", ImportFileRequest{Path: "missing.json"}))
	if w.Code != http.StatusNotFound {
		t.Errorf("ImportFile() missing status = %v, want %v", w.Code, http.StatusNotFound)
	}
}

func TestImportHandler_ImportClipboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImportService := mocks.NewMockImportService(ctrl)
	handler := NewImportHandler(mockImportService)

	mockImportService.EXPECT().
		ImportClipboard(gomock.Any(), service.ClipboardRequest{Text: "new", Current: "old", Mode: "append"}).
		Return(service.ClipboardResult{
			Markdown: "old\n\nnew",
			Type:     service.ContentText,
			Mode:     service.ModeAppend,
			Stats:    markup.Measure("old\n\nnew"),
		}, nil)

	w := httptest.NewRecorder()
	body := ClipboardRequest{Text: "new", Current: "old", Mode: "append"}
	handler.ImportClipboard(w, newJSONRequest(t, http.MethodPost, "/api/import/clipboard", body))

	if w.Code != http.StatusOK {
		t.Fatalf("ImportClipboard() status = %v, want %v", w.Code, http.StatusOK)
	}
	resp := decodeResponse[ClipboardResponse](t, w)
	if resp.Markdown != "old\n\nnew" || resp.Type != "text" || resp.Mode != "append" || resp.Stats.Lines != 3 {
		t.Errorf("ImportClipboard() response = %+v", resp)
	}
}

func TestImportHandler_ListFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockImportService := mocks.NewMockImportService(ctrl)
	handler := NewImportHandler(mockImportService)

	mockImportService.EXPECT().ListFiles(gomock.Any()).
		Return([]workspace.File{{RelPath: "docs/a.json", Folder: "docs", Size: 10}}, nil)

	w := httptest.NewRecorder()
	handler.ListFiles(w, httptest.NewRequest(http.MethodGet, "/api/files", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ListFiles() status = %v, want %v", w.Code, http.StatusOK)
	}
	resp := decodeResponse[FilesResponse](t, w)
	if len(resp.Files) != 1 || resp.Files[0].RelPath != "docs/a.json" {
		t.Errorf("ListFiles() response = %+v", resp)
	}
}
