package notes

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/models"
)

// Repository describes persistence operations for notes.
type Repository interface {
	// List returns every note in insertion order.
	List(ctx context.Context) ([]models.Note, error)

	// GetByID returns common.ErrorNotFound when no note has the id.
	GetByID(ctx context.Context, id string) (models.Note, error)

	// Create inserts a note whose ID is already assigned.
	Create(ctx context.Context, note models.Note) error

	// Update overwrites title, description and category of note.ID.
	// Returns common.ErrorNotFound when the id is unknown.
	Update(ctx context.Context, note models.Note) error

	// Delete removes the note. Returns common.ErrorNotFound when the id is unknown.
	Delete(ctx context.Context, id string) error
}
