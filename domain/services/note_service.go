package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type NoteService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	GetNote(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	ListNotes(ctx context.Context, query string) ([]dto.NoteResponse, error)
	UpdateNote(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	DeleteNote(ctx context.Context, id uuid.UUID) error
}
