package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"markdown-json-editor/internal/jsonmd"
	"markdown-json-editor/internal/service"
	"markdown-json-editor/internal/service/mocks"
	"markdown-json-editor/internal/storage"
	storagemocks "markdown-json-editor/internal/storage/mocks"
	"markdown-json-editor/internal/workspace"
)

func init() {
	// Set default logger to discard output for cleaner test output
	// This suppresses logs from slog.Default() used in the service layer
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

type importFixture struct {
	documents *storagemocks.MockDocumentStore
	sections  *storagemocks.MockSectionStore
	files     *mocks.MockWorkspace
	svc       service.ImportService
}

func newImportFixture(t *testing.T, maxBytes int) importFixture {
	ctrl := gomock.NewController(t)
	f := importFixture{
		documents: storagemocks.NewMockDocumentStore(ctrl),
		sections:  storagemocks.NewMockSectionStore(ctrl),
		files:     mocks.NewMockWorkspace(ctrl),
	}
	f.svc = service.NewImportService(jsonmd.New(), f.documents, f.sections, f.files, maxBytes)
	return f
}

// expectCreate makes Create assign id and capture the stored record.
func (f importFixture) expectCreate(id string, stored *storage.DocumentRecord) {
	f.documents.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *storage.DocumentRecord) error {
			doc.ID = id
			if stored != nil {
				*stored = *doc
			}
			return nil
		})
}

func TestNewImportService(t *testing.T) {
	f := newImportFixture(t, 0)
	if f.svc == nil {
		t.Fatal("NewImportService() returned nil")
	}
}

func TestImportService_ImportJSON(t *testing.T) {
	const docID = "0b5c4f0e-3a8e-4d43-9d61-7c1f4e0f6a11"

	tests := []struct {
		name      string
		req       service.ImportRequest
		wantSects int
		check     func(t *testing.T, got service.ImportResult, stored storage.DocumentRecord, sections []storage.SectionRecord)
	}{
		{
			name: "several sections need a selection",
			req: service.ImportRequest{
				Name: "deck.json",
				Text: `{"sections":[{"markdown":"## One, long enough to count"},{"markdown":"## Two, long enough to count"}]}`,
			},
			wantSects: 2,
			check: func(t *testing.T, got service.ImportResult, stored storage.DocumentRecord, sections []storage.SectionRecord) {
				if !got.NeedsSelection || got.Markdown != "" {
					t.Errorf("result = %+v, want selection without markdown", got)
				}
				if len(got.Sections) != 2 || got.Sections[1].Title != "sections[1]" || got.Sections[1].Index != 1 {
					t.Errorf("Sections = %+v", got.Sections)
				}
				if stored.Name != "deck.json" || stored.Source != service.SourceUpload {
					t.Errorf("stored = %+v", stored)
				}
				if sections[0].Content != "## One, long enough to count" {
					t.Errorf("stored section content = %q", sections[0].Content)
				}
			},
		},
		{
			name: "single section is loaded directly",
			req: service.ImportRequest{
				Name: "one.json",
				Text: `{"sections":[{"markdown":"## Hi there, this is long enough"}]}`,
			},
			wantSects: 1,
			check: func(t *testing.T, got service.ImportResult, stored storage.DocumentRecord, _ []storage.SectionRecord) {
				if got.NeedsSelection {
					t.Error("NeedsSelection = true, want false")
				}
				if got.Markdown != "## Hi there, this is long enough" || got.Title != "sections[0]" {
					t.Errorf("result = %+v", got)
				}
				if stored.Markdown != got.Markdown {
					t.Errorf("stored markdown = %q, want %q", stored.Markdown, got.Markdown)
				}
			},
		},
		{
			name: "no sections falls back to content extraction",
			req: service.ImportRequest{
				Text: `{"title":"T"}`,
			},
			wantSects: 0,
			check: func(t *testing.T, got service.ImportResult, _ storage.DocumentRecord, _ []storage.SectionRecord) {
				if got.Markdown != "# T\n\n" {
					t.Errorf("Markdown = %q", got.Markdown)
				}
				if got.Name != "untitled.json" || got.Title != "untitled.json" {
					t.Errorf("Name/Title = %q/%q, want default name", got.Name, got.Title)
				}
				if len(got.Sections) != 0 {
					t.Errorf("Sections = %+v, want none", got.Sections)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t, 0)

			var stored storage.DocumentRecord
			var storedSections []storage.SectionRecord
			f.expectCreate(docID, &stored)
			if tt.wantSects > 0 {
				f.sections.EXPECT().
					ReplaceAll(gomock.Any(), docID, gomock.Len(tt.wantSects)).
					DoAndReturn(func(_ context.Context, _ string, sections []storage.SectionRecord) error {
						storedSections = sections
						return nil
					})
			}

			got, err := f.svc.ImportJSON(testContext(), tt.req)
			if err != nil {
				t.Fatalf("ImportJSON() error = %v", err)
			}
			if got.DocumentID != docID {
				t.Errorf("DocumentID = %q, want %q", got.DocumentID, docID)
			}
			if stored.Raw != tt.req.Text {
				t.Errorf("stored raw = %q, want input", stored.Raw)
			}
			tt.check(t, got, stored, storedSections)
		})
	}
}

func TestImportService_ImportJSON_Errors(t *testing.T) {
	tests := []struct {
		name      string
		maxBytes  int
		req       service.ImportRequest
		mockSetup func(f importFixture)
		checkErr  func(error) bool
	}{
		{
			name: "blank text",
			req:  service.ImportRequest{Text: "  \n "},
			checkErr: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "text"
			},
		},
		{
			name:     "too large",
			maxBytes: 4,
			req:      service.ImportRequest{Text: `{"a":"bcd"}`},
			checkErr: func(err error) bool { return errors.Is(err, service.ErrPayloadTooLarge) },
		},
		{
			name: "store failure",
			req:  service.ImportRequest{Text: `{"content":"x"}`},
			mockSetup: func(f importFixture) {
				f.documents.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
			},
			checkErr: func(err error) bool { return err != nil && !errors.Is(err, service.ErrInvalidInput) },
		},
		{
			name: "section failure removes the document",
			req:  service.ImportRequest{Text: `{"sections":[{"markdown":"## A section that is long enough"}]}`},
			mockSetup: func(f importFixture) {
				f.expectCreate("doc-1", nil)
				f.sections.EXPECT().ReplaceAll(gomock.Any(), "doc-1", gomock.Any()).Return(errors.New("constraint failed"))
				f.documents.EXPECT().Delete(gomock.Any(), "doc-1").Return(nil)
			},
			checkErr: func(err error) bool { return err != nil },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t, tt.maxBytes)
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}

			_, err := f.svc.ImportJSON(testContext(), tt.req)
			if err == nil {
				t.Fatal("ImportJSON() expected error, got nil")
			}
			if !tt.checkErr(err) {
				t.Errorf("ImportJSON() error mismatch: %v", err)
			}
		})
	}
}

func TestImportService_ImportFile(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		mockSetup func(f importFixture)
		wantName  string
		checkErr  func(error) bool
	}{
		{
			name: "json file",
			path: "decks/intro.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "decks/intro.json").Return([]byte("\ufeff"+`{"content":"Hello\\nWorld"}`), nil)
				f.expectCreate("doc-1", nil)
				f.sections.EXPECT().ReplaceAll(gomock.Any(), "doc-1", gomock.Len(1)).Return(nil)
			},
			wantName: "intro.json",
		},
		{
			name:     "blank path",
			path:     " ",
			checkErr: func(err error) bool { return errors.Is(err, service.ErrInvalidInput) },
		},
		{
			name: "missing file",
			path: "missing.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "missing.json").Return(nil, fmt.Errorf("stat: %w", fs.ErrNotExist))
			},
			checkErr: func(err error) bool { return errors.Is(err, service.ErrNotFound) },
		},
		{
			name: "path outside workspace",
			path: "../secret.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "../secret.json").Return(nil, workspace.ErrOutsideWorkspace)
			},
			checkErr: func(err error) bool {
				var validationErr *service.ValidationError
				return errors.As(err, &validationErr) && validationErr.Field == "path"
			},
		},
		{
			name: "file too large",
			path: "big.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "big.json").Return(nil, workspace.ErrTooLarge)
			},
			checkErr: func(err error) bool { return errors.Is(err, service.ErrPayloadTooLarge) },
		},
		{
			name: "binary file",
			path: "bin.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "bin.json").Return([]byte{0xff, 0xfe, 0x00}, nil)
			},
			checkErr: func(err error) bool { return errors.Is(err, service.ErrInvalidInput) },
		},
		{
			name: "empty file",
			path: "empty.json",
			mockSetup: func(f importFixture) {
				f.files.EXPECT().Read(gomock.Any(), "empty.json").Return([]byte("\n"), nil)
			},
			checkErr: func(err error) bool { return errors.Is(err, service.ErrInvalidInput) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t, 0)
			if tt.mockSetup != nil {
				tt.mockSetup(f)
			}

			got, err := f.svc.ImportFile(testContext(), service.ImportFileRequest{Path: tt.path})
			if tt.checkErr != nil {
				if err == nil || !tt.checkErr(err) {
					t.Errorf("ImportFile() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImportFile() error = %v", err)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
			if got.Markdown != "Hello\nWorld" {
				t.Errorf("Markdown = %q", got.Markdown)
			}
		})
	}
}

func TestImportService_ImportClipboard(t *testing.T) {
	tests := []struct {
		name      string
		req       service.ClipboardRequest
		want      string
		wantType  string
		wantMode  string
		wantLines int
		wantErr   bool
	}{
		{
			name:      "json payload",
			req:       service.ClipboardRequest{Text: ` {"title":"T","intro":"I"}`},
			want:      "# T\n\nI\n\n",
			wantType:  service.ContentJSON,
			wantMode:  service.ModeReplace,
			wantLines: 5,
		},
		{
			name:      "escaped text",
			req:       service.ClipboardRequest{Text: `a\nb`},
			want:      "a\nb",
			wantType:  service.ContentTextEscaped,
			wantMode:  service.ModeReplace,
			wantLines: 2,
		},
		{
			name:      "plain text",
			req:       service.ClipboardRequest{Text: "just words"},
			want:      "just words",
			wantType:  service.ContentText,
			wantMode:  service.ModeReplace,
			wantLines: 1,
		},
		{
			name:      "append to current",
			req:       service.ClipboardRequest{Text: "new", Current: "old", Mode: service.ModeAppend},
			want:      "old\n\nnew",
			wantType:  service.ContentText,
			wantMode:  service.ModeAppend,
			wantLines: 3,
		},
		{
			name:      "append to empty editor replaces",
			req:       service.ClipboardRequest{Text: "new", Current: "  ", Mode: service.ModeAppend},
			want:      "new",
			wantType:  service.ContentText,
			wantMode:  service.ModeAppend,
			wantLines: 1,
		},
		{
			name:    "blank payload",
			req:     service.ClipboardRequest{Text: " \t"},
			wantErr: true,
		},
		{
			name:    "json without usable content",
			req:     service.ClipboardRequest{Text: `{"content":"  "}`},
			wantErr: true,
		},
		{
			name:    "unknown mode",
			req:     service.ClipboardRequest{Text: "x", Mode: "prepend"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newImportFixture(t, 0)

			got, err := f.svc.ImportClipboard(testContext(), tt.req)
			if tt.wantErr {
				if !errors.Is(err, service.ErrInvalidInput) {
					t.Errorf("ImportClipboard() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ImportClipboard() error = %v", err)
			}
			if got.Markdown != tt.want {
				t.Errorf("Markdown = %q, want %q", got.Markdown, tt.want)
			}
			if got.Type != tt.wantType || got.Mode != tt.wantMode {
				t.Errorf("Type/Mode = %q/%q, want %q/%q", got.Type, got.Mode, tt.wantType, tt.wantMode)
			}
			if got.Stats.Lines != tt.wantLines {
				t.Errorf("Stats.Lines = %d, want %d", got.Stats.Lines, tt.wantLines)
			}
		})
	}
}

func TestImportService_ListFiles(t *testing.T) {
	f := newImportFixture(t, 0)
	f.files.EXPECT().Scan(gomock.Any()).Return([]workspace.File{{RelPath: "a.json"}}, nil)

	files, err := f.svc.ListFiles(testContext())
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "a.json" {
		t.Errorf("ListFiles() = %+v", files)
	}

	f.files.EXPECT().Scan(gomock.Any()).Return(nil, errors.New("permission denied"))
	if _, err := f.svc.ListFiles(testContext()); err == nil {
		t.Error("ListFiles() expected error, got nil")
	}
}
