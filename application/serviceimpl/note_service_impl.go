package serviceimpl

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
)

type noteServiceImpl struct {
	noteRepo repositories.NoteRepository
}

func NewNoteService(noteRepo repositories.NoteRepository) services.NoteService {
	return &noteServiceImpl{noteRepo: noteRepo}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	note := &models.Note{
		ID:    uuid.New(),
		Title: strings.TrimSpace(req.Title),
		Body:  strings.TrimSpace(req.Body),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	return dto.ToNoteResponse(note), nil
}

func (s *noteServiceImpl) GetNote(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("note")
		}
		return nil, err
	}
	return dto.ToNoteResponse(note), nil
}

func (s *noteServiceImpl) ListNotes(ctx context.Context, query string) ([]dto.NoteResponse, error) {
	notes, err := s.noteRepo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}
	return dto.ToNoteResponses(notes), nil
}

func (s *noteServiceImpl) UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("note")
		}
		return nil, err
	}

	if req.Title != nil {
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Body != nil {
		note.Body = strings.TrimSpace(*req.Body)
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return dto.ToNoteResponse(note), nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, id uuid.UUID) error {
	if _, err := s.noteRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("note")
		}
		return err
	}
	return s.noteRepo.Delete(ctx, id)
}
