package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"markdown-json-editor/internal/handlers"
	"markdown-json-editor/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	ImportService   service.ImportService
	DocumentService service.DocumentService
	ExportService   service.ExportService
	EditorService   service.EditorService
	HealthChecks    map[string]handlers.HealthCheck
	IndexHTML       string // Embedded editor page
	MaxBodyBytes    int64  // Request body cap for API calls; zero disables it
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)

	importHandler := handlers.NewImportHandler(deps.ImportService)
	documentHandler := handlers.NewDocumentHandler(deps.DocumentService)
	exportHandler := handlers.NewExportHandler(deps.ExportService)
	editorHandler := handlers.NewEditorHandler(deps.EditorService)

	r.Route("/api", func(r chi.Router) {
		if deps.MaxBodyBytes > 0 {
			// JSON escaping can add a few bytes per character over the text cap
			r.Use(middleware.RequestSize(2*deps.MaxBodyBytes + 4096))
		}

		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.HealthChecks))

		r.Post("/import", importHandler.ImportJSON)
		r.Post("/import/file", importHandler.ImportFile)
		r.Post("/import/clipboard", importHandler.ImportClipboard)
		r.Get("/files", importHandler.ListFiles)

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", documentHandler.List)
			r.Get("/{id}", documentHandler.Get)
			r.Delete("/{id}", documentHandler.Delete)
			r.Get("/{id}/sections/{index}", documentHandler.Section)
			r.Get("/{id}/combined", documentHandler.Combined)
		})

		r.Post("/export", exportHandler.ExportString)
		r.Post("/export/document", exportHandler.ExportDocument)
		r.Post("/preview", editorHandler.Preview)
		r.Post("/image", editorHandler.Image)
	})

	// Serve the editor page at root
	r.Method(http.MethodGet, "/", handlers.NewPageHandler(deps.IndexHTML))

	return r
}
