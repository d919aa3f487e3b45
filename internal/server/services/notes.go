// Package services contains the business logic of the note server.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophnotes/internal/dbx"
	"github.com/dmitrijs2005/gophnotes/internal/models"
	"github.com/dmitrijs2005/gophnotes/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewNoteService(db *sql.DB, repomanager repomanager.RepositoryManager) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: repomanager,
		newID:       uuid.NewString,
	}
}

// normalize trims surrounding whitespace from the text fields.
func normalize(n models.Note) models.Note {
	n.Title = strings.TrimSpace(n.Title)
	n.Description = strings.TrimSpace(n.Description)
	return n
}

func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx)
}

// Create validates the note, assigns a fresh id and returns the stored row.
// Any client-supplied id is ignored.
func (s *NoteService) Create(ctx context.Context, note models.Note) (models.Note, error) {
	note = normalize(note)
	if err := models.ValidateNote(note); err != nil {
		return models.Note{}, err
	}
	note.ID = s.newID()

	var stored models.Note
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)
		if err := repo.Create(ctx, note); err != nil {
			return err
		}
		var err error
		stored, err = repo.GetByID(ctx, note.ID)
		return err
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("create note: %w", err)
	}
	return stored, nil
}

// Update overwrites the note with the given id and returns the stored row.
// common.ErrorNotFound is returned for an unknown id.
func (s *NoteService) Update(ctx context.Context, id string, note models.Note) (models.Note, error) {
	note = normalize(note)
	if err := models.ValidateNote(note); err != nil {
		return models.Note{}, err
	}
	note.ID = id

	var stored models.Note
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Notes(tx)
		if err := repo.Update(ctx, note); err != nil {
			return err
		}
		var err error
		stored, err = repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return models.Note{}, fmt.Errorf("update note %s: %w", id, err)
	}
	return stored, nil
}

func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Notes(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}
