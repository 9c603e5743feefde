package service_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/storage"
	storagemocks "markdown-json-editor/internal/storage/mocks"
)

const testDocID = "6f1c2e7a-90b4-4b3f-8d2a-1e5c9f0a7b21"

func newDocumentFixture(t *testing.T) (*storagemocks.MockDocumentStore, *storagemocks.MockSectionStore, service.DocumentService) {
	ctrl := gomock.NewController(t)
	documents := storagemocks.NewMockDocumentStore(ctrl)
	sections := storagemocks.NewMockSectionStore(ctrl)
	return documents, sections, service.NewDocumentService(documents, sections)
}

func TestDocumentService_List(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		mockSetup func(*storagemocks.MockDocumentStore)
		wantLen   int
		wantErr   error
	}{
		{
			name:  "default limit",
			limit: 0,
			mockSetup: func(m *storagemocks.MockDocumentStore) {
				m.EXPECT().List(gomock.Any(), 50).Return([]storage.DocumentRecord{
					{ID: "a", Name: "a.json", SectionCount: 2},
					{ID: "b", Name: "b.json"},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name:  "explicit limit",
			limit: 5,
			mockSetup: func(m *storagemocks.MockDocumentStore) {
				m.EXPECT().List(gomock.Any(), 5).Return([]storage.DocumentRecord{}, nil)
			},
			wantLen: 0,
		},
		{
			name:    "negative limit",
			limit:   -1,
			wantErr: service.ErrInvalidInput,
		},
		{
			name:    "limit too large",
			limit:   501,
			wantErr: service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents, _, svc := newDocumentFixture(t)
			if tt.mockSetup != nil {
				tt.mockSetup(documents)
			}

			got, err := svc.List(testContext(), tt.limit)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("List() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("List() returned %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestDocumentService_Get(t *testing.T) {
	documents, sections, svc := newDocumentFixture(t)

	documents.EXPECT().GetByID(gomock.Any(), testDocID).Return(&storage.DocumentRecord{
		ID:           testDocID,
		Name:         "deck.json",
		Source:       service.SourceUpload,
		Markdown:     "",
		SectionCount: 2,
	}, nil)
	sections.EXPECT().ListByDocument(gomock.Any(), testDocID).Return([]storage.SectionRecord{
		{SectionIndex: 0, Title: "slides[0]", Content: "héllo"},
		{SectionIndex: 1, Title: "slides[1]", Content: "world!"},
	}, nil)

	got, err := svc.Get(testContext(), testDocID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID != testDocID || got.Name != "deck.json" || got.SectionCount != 2 {
		t.Errorf("Get() = %+v", got)
	}
	if len(got.Sections) != 2 || got.Sections[0].Characters != 5 || got.Sections[1].Title != "slides[1]" {
		t.Errorf("Get() sections = %+v", got.Sections)
	}
}

func TestDocumentService_Get_Errors(t *testing.T) {
	documents, _, svc := newDocumentFixture(t)

	if _, err := svc.Get(testContext(), "not-a-uuid"); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Get() invalid id error = %v, want ErrInvalidInput", err)
	}

	documents.EXPECT().GetByID(gomock.Any(), testDocID).Return(nil, storage.ErrNotFound)
	if _, err := svc.Get(testContext(), testDocID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Get() missing error = %v, want ErrNotFound", err)
	}
}

func TestDocumentService_Section(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		mockSetup func(*storagemocks.MockDocumentStore, *storagemocks.MockSectionStore)
		wantErr   error
	}{
		{
			name:  "existing section",
			index: 1,
			mockSetup: func(d *storagemocks.MockDocumentStore, s *storagemocks.MockSectionStore) {
				s.EXPECT().GetByIndex(gomock.Any(), testDocID, 1).
					Return(&storage.SectionRecord{SectionIndex: 1, Title: "sections[1]", Content: "## Two"}, nil)
				d.EXPECT().UpdateMarkdown(gomock.Any(), testDocID, "## Two").Return(nil)
			},
		},
		{
			name:  "missing section",
			index: 9,
			mockSetup: func(_ *storagemocks.MockDocumentStore, s *storagemocks.MockSectionStore) {
				s.EXPECT().GetByIndex(gomock.Any(), testDocID, 9).Return(nil, storage.ErrNotFound)
			},
			wantErr: service.ErrNotFound,
		},
		{
			name:    "negative index",
			index:   -2,
			wantErr: service.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents, sections, svc := newDocumentFixture(t)
			if tt.mockSetup != nil {
				tt.mockSetup(documents, sections)
			}

			got, err := svc.Section(testContext(), testDocID, tt.index)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Section() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Section() error = %v", err)
			}
			if got.Markdown != "## Two" || got.Title != "sections[1]" || got.Index != 1 || got.DocumentID != testDocID {
				t.Errorf("Section() = %+v", got)
			}
		})
	}
}

func TestDocumentService_Combined(t *testing.T) {
	t.Run("joins sections", func(t *testing.T) {
		documents, sections, svc := newDocumentFixture(t)

		want := "<!-- slides[0] -->\nA\n\n---\n\n<!-- slides[1] -->\nB"
		sections.EXPECT().ListByDocument(gomock.Any(), testDocID).Return([]storage.SectionRecord{
			{SectionIndex: 0, Title: "slides[0]", Content: "A"},
			{SectionIndex: 1, Title: "slides[1]", Content: "B"},
		}, nil)
		documents.EXPECT().UpdateMarkdown(gomock.Any(), testDocID, want).Return(nil)

		got, err := svc.Combined(testContext(), testDocID)
		if err != nil {
			t.Fatalf("Combined() error = %v", err)
		}
		if got.Markdown != want {
			t.Errorf("Combined() markdown = %q, want %q", got.Markdown, want)
		}
		if got.Index != service.CombinedIndex || !strings.Contains(got.Title, "2") {
			t.Errorf("Combined() = %+v", got)
		}
	})

	t.Run("no sections returns extracted markdown", func(t *testing.T) {
		documents, sections, svc := newDocumentFixture(t)

		sections.EXPECT().ListByDocument(gomock.Any(), testDocID).Return([]storage.SectionRecord{}, nil)
		documents.EXPECT().GetByID(gomock.Any(), testDocID).
			Return(&storage.DocumentRecord{ID: testDocID, Name: "plain.json", Markdown: "# T\n\n"}, nil)

		got, err := svc.Combined(testContext(), testDocID)
		if err != nil {
			t.Fatalf("Combined() error = %v", err)
		}
		if got.Markdown != "# T\n\n" || got.Title != "plain.json" {
			t.Errorf("Combined() = %+v", got)
		}
	})

	t.Run("unknown document", func(t *testing.T) {
		documents, sections, svc := newDocumentFixture(t)

		sections.EXPECT().ListByDocument(gomock.Any(), testDocID).Return([]storage.SectionRecord{}, nil)
		documents.EXPECT().GetByID(gomock.Any(), testDocID).Return(nil, storage.ErrNotFound)

		if _, err := svc.Combined(testContext(), testDocID); !errors.Is(err, service.ErrNotFound) {
			t.Errorf("Combined() error = %v, want ErrNotFound", err)
		}
	})
}

func TestDocumentService_Delete(t *testing.T) {
	documents, _, svc := newDocumentFixture(t)

	documents.EXPECT().Delete(gomock.Any(), testDocID).Return(nil)
	if err := svc.Delete(testContext(), testDocID); err != nil {
		t.Errorf("Delete() error = %v", err)
	}

	documents.EXPECT().Delete(gomock.Any(), testDocID).Return(storage.ErrNotFound)
	if err := svc.Delete(testContext(), testDocID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Delete() missing error = %v, want ErrNotFound", err)
	}

	if err := svc.Delete(testContext(), ""); !errors.Is(err, service.ErrInvalidInput) {
		t.Errorf("Delete() empty id error = %v, want ErrInvalidInput", err)
	}
}
