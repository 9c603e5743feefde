package storage

import "time"

// DocumentRecord is one imported JSON payload.
type DocumentRecord struct {
	ID           string // UUID
	Name         string // File name or label given at import
	Source       string // "upload", "file" or "clipboard"
	Raw          string // Original JSON text
	Markdown     string // Markdown last handed to the editor
	SectionCount int    // Filled by List and GetByID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SectionRecord is one section found in a document.
type SectionRecord struct {
	ID           string // UUID
	DocumentID   string // Foreign key to documents.id
	SectionIndex int    // Position in extraction order (starts at 0)
	Title        string // JSON path, e.g. "sections[2]"
	Content      string // Normalized Markdown
}
