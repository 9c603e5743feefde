package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_section_store.go -package=mocks markdown-json-editor/internal/storage SectionStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SectionStore defines the interface for section storage operations.
type SectionStore interface {
	// ReplaceAll stores sections for a document in the given order,
	// replacing any previous ones. SectionIndex is assigned from the order.
	ReplaceAll(ctx context.Context, documentID string, sections []SectionRecord) error
	// ListByDocument returns a document's sections ordered by index.
	ListByDocument(ctx context.Context, documentID string) ([]SectionRecord, error)
	// GetByIndex gets one section. Returns nil and ErrNotFound if not found.
	GetByIndex(ctx context.Context, documentID string, index int) (*SectionRecord, error)
}

// SectionRepo provides methods for section operations.
// It implements the SectionStore interface.
type SectionRepo struct {
	db *sql.DB
}

// NewSectionRepo creates a new SectionRepo.
func NewSectionRepo(db *sql.DB) *SectionRepo {
	return &SectionRepo{db: db}
}

// ReplaceAll stores sections for a document inside one transaction.
func (r *SectionRepo) ReplaceAll(ctx context.Context, documentID string, sections []SectionRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM sections WHERE document_id = ?", documentID); err != nil {
		return fmt.Errorf("failed to clear sections: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO sections (id, document_id, section_index, title, content) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare section insert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := range sections {
		section := &sections[i]
		if section.ID == "" {
			section.ID = uuid.New().String()
		}
		section.DocumentID = documentID
		section.SectionIndex = i

		if _, err := stmt.ExecContext(ctx, section.ID, documentID, i, section.Title, section.Content); err != nil {
			return fmt.Errorf("failed to insert section %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit sections: %w", err)
	}
	return nil
}

// ListByDocument returns a document's sections ordered by index.
func (r *SectionRepo) ListByDocument(ctx context.Context, documentID string) ([]SectionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, document_id, section_index, title, content FROM sections WHERE document_id = ? ORDER BY section_index",
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sections: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	sections := []SectionRecord{}
	for rows.Next() {
		var section SectionRecord
		if err := rows.Scan(&section.ID, &section.DocumentID, &section.SectionIndex, &section.Title, &section.Content); err != nil {
			return nil, fmt.Errorf("failed to scan section: %w", err)
		}
		sections = append(sections, section)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sections: %w", err)
	}

	return sections, nil
}

// GetByIndex gets one section. Returns nil and ErrNotFound if not found.
func (r *SectionRepo) GetByIndex(ctx context.Context, documentID string, index int) (*SectionRecord, error) {
	var section SectionRecord

	err := r.db.QueryRowContext(ctx,
		"SELECT id, document_id, section_index, title, content FROM sections WHERE document_id = ? AND section_index = ?",
		documentID, index,
	).Scan(&section.ID, &section.DocumentID, &section.SectionIndex, &section.Title, &section.Content)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query section: %w", err)
	}

	return &section, nil
}
