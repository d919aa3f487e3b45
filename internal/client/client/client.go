package client

import (
	"context"

	"github.com/dmitrijs2005/gophnotes/internal/models"
)

// Client is the remote note resource as seen from the notes client.
type Client interface {
	List(ctx context.Context) ([]models.Note, error)
	Create(ctx context.Context, note models.Note) (models.Note, error)
	Update(ctx context.Context, note models.Note) (models.Note, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
	Close() error
}
