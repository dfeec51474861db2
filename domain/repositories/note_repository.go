package repositories

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	FindAll(ctx context.Context, query string) ([]models.Note, error)
	FindRecent(ctx context.Context, limit int) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}
