package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks markdown-json-editor/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// DocumentStore defines the interface for import session storage.
type DocumentStore interface {
	// Create inserts a document. A missing ID is filled with a new UUID.
	Create(ctx context.Context, doc *DocumentRecord) error
	// GetByID gets a document by ID. Returns nil and ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*DocumentRecord, error)
	// List returns the newest documents first, without their raw text.
	List(ctx context.Context, limit int) ([]DocumentRecord, error)
	// UpdateMarkdown replaces the Markdown last loaded from a document.
	UpdateMarkdown(ctx context.Context, id, markdown string) error
	// Delete removes a document and its sections.
	Delete(ctx context.Context, id string) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// Create inserts a document. A missing ID is filled with a new UUID.
func (r *DocumentRepo) Create(ctx context.Context, doc *DocumentRecord) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO documents (id, name, source, raw, markdown) VALUES (?, ?, ?, ?, ?)",
		doc.ID, doc.Name, doc.Source, doc.Raw, doc.Markdown,
	)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

// GetByID gets a document by ID. Returns nil and ErrNotFound if not found.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*DocumentRecord, error) {
	var doc DocumentRecord
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT d.id, d.name, d.source, d.raw, d.markdown, d.created_at, d.updated_at,
			(SELECT COUNT(*) FROM sections s WHERE s.document_id = d.id)
		FROM documents d WHERE d.id = ?`,
		id,
	).Scan(&doc.ID, &doc.Name, &doc.Source, &doc.Raw, &doc.Markdown, &createdAtStr, &updatedAtStr, &doc.SectionCount)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query document: %w", err)
	}

	if doc.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, err
	}

	return &doc, nil
}

// List returns the newest documents first, without their raw text.
func (r *DocumentRepo) List(ctx context.Context, limit int) ([]DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.name, d.source, d.created_at, d.updated_at,
			(SELECT COUNT(*) FROM sections s WHERE s.document_id = d.id)
		FROM documents d ORDER BY d.created_at DESC, d.rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	docs := []DocumentRecord{}
	for rows.Next() {
		var doc DocumentRecord
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Source, &createdAtStr, &updatedAtStr, &doc.SectionCount); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		if doc.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, err
		}
		if doc.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents: %w", err)
	}

	return docs, nil
}

// UpdateMarkdown replaces the Markdown last loaded from a document.
func (r *DocumentRepo) UpdateMarkdown(ctx context.Context, id, markdown string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE documents SET markdown = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		markdown, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}
	return requireAffected(result)
}

// Delete removes a document. Its sections go with it through the foreign key.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
