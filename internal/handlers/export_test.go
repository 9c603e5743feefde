package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/markup"
	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/service/mocks"
)

func TestExportHandler_ExportString(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		mockSetup  func(*mocks.MockExportService)
		wantStatus int
		wantJSON   string
	}{
		{
			name: "exported",
			body: ExportRequest{Markdown: "# A\nb"},
			mockSetup: func(m *mocks.MockExportService) {
				m.EXPECT().ExportString(gomock.Any(), service.ExportRequest{Markdown: "# A\nb"}).
					Return(service.ExportResult{JSON: `"# A\nb"`, Stats: markup.Measure("# A\nb")}, nil)
			},
			wantStatus: http.StatusOK,
			wantJSON:   `"# A\nb"`,
		},
		{
			name: "save path rejected",
			body: ExportRequest{Markdown: "x", SavePath: "../x.json"},
			mockSetup: func(m *mocks.MockExportService) {
				m.EXPECT().ExportString(gomock.Any(), service.ExportRequest{Markdown: "x", SavePath: "../x.json"}).
					Return(service.ExportResult{}, &service.ValidationError{Field: "save_path", Message: "path outside workspace"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON body",
			body:       "[",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockExportService := mocks.NewMockExportService(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockExportService)
			}

			handler := NewExportHandler(mockExportService)
			w := httptest.NewRecorder()
			handler.ExportString(w, newJSONRequest(t, http.MethodPost, "/api/export", tt.body))

			if w.Code != tt.wantStatus {
				t.Fatalf("ExportString() status = %v, want %v", w.Code, tt.wantStatus)
			}
			if tt.wantJSON != "" {
				resp := decodeResponse[ExportResponse](t, w)
				if resp.JSON != tt.wantJSON || resp.Stats.Lines != 2 {
					t.Errorf("ExportString() response = %+v", resp)
				}
			}
		})
	}
}

func TestExportHandler_ExportDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExportService := mocks.NewMockExportService(ctrl)
	handler := NewExportHandler(mockExportService)

	doc := jsonmd.JsonContent{Title: "Deck", Sections: []jsonmd.Section{{Markdown: "## One"}}}
	mockExportService.EXPECT().
		ExportDocument(gomock.Any(), service.DocumentExportRequest{Markdown: "# Deck\n\n## One", SavePath: "deck.json"}).
		Return(service.DocumentExportResult{Document: doc, JSON: "{}", SavedTo: "deck.json"}, nil)

	w := httptest.NewRecorder()
	body := ExportRequest{Markdown: "# Deck\n\n## One", SavePath: "deck.json"}
	handler.ExportDocument(w, newJSONRequest(t, http.MethodPost, "/api/export/document", body))

	if w.Code != http.StatusOK {
		t.Fatalf("ExportDocument() status = %v, want %v", w.Code, http.StatusOK)
	}
	resp := decodeResponse[DocumentExportResponse](t, w)
	if resp.Document.Title != "Deck" || len(resp.Document.Sections) != 1 || resp.SavedTo != "deck.json" {
		t.Errorf("ExportDocument() response = %+v", resp)
	}
}
