package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/beer-battle/internal/logger"
	"github.com/MKhiriev/beer-battle/internal/store"
	"github.com/MKhiriev/beer-battle/internal/utils"
	"github.com/MKhiriev/beer-battle/internal/validators"
	"github.com/MKhiriev/beer-battle/models"
)

// noteService keeps notes in the local cache only.
type noteService struct {
	notes store.NoteRepository

	local     localErrors
	validator validators.Validator
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func newNoteService(deps clientDeps) *noteService {
	return &noteService{
		notes:     deps.storages.Notes,
		local:     deps.local,
		validator: deps.validator,
		ids:       deps.ids,
		now:       deps.now,
		logger:    deps.logger,
	}
}

func (s *noteService) Create(ctx context.Context, form models.NoteForm) (models.Nota, error) {
	note := models.Nota{
		ID:        s.ids.Generate(),
		Title:     strings.TrimSpace(form.Title),
		Content:   form.Content,
		CreatedAt: models.Timestamp(s.now()),
	}
	if err := s.validator.Validate(ctx, note); err != nil {
		return models.Nota{}, err
	}

	if err := s.notes.InsertOrReplace(ctx, note); err != nil {
		s.logger.Err(err).Str("func", "noteService.Create").Msg("failed to create note")
		return models.Nota{}, fmt.Errorf("insert note: %w", s.local.wrap(err))
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, id string, form models.NoteForm) (models.Nota, error) {
	note, err := s.Get(ctx, id)
	if err != nil {
		return models.Nota{}, err
	}

	note.Title = strings.TrimSpace(form.Title)
	note.Content = form.Content
	if err = s.validator.Validate(ctx, note); err != nil {
		return models.Nota{}, err
	}

	if err = s.notes.Update(ctx, note); err != nil {
		s.logger.Err(err).Str("func", "noteService.Update").Str("id", id).Msg("failed to update note")
		return models.Nota{}, fmt.Errorf("update note: %w", s.local.wrap(err))
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note: %w", s.local.wrap(err))
	}
	return nil
}

func (s *noteService) Get(ctx context.Context, id string) (models.Nota, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return models.Nota{}, fmt.Errorf("get note %s: %w", id, s.local.wrap(err))
	}
	return note, nil
}

func (s *noteService) GetAll(ctx context.Context) ([]models.Nota, error) {
	notes, err := s.notes.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get notes: %w", s.local.wrap(err))
	}
	return notes, nil
}

func (s *noteService) Search(ctx context.Context, query string) ([]models.Nota, error) {
	notes, err := s.notes.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", s.local.wrap(err))
	}
	return notes, nil
}
