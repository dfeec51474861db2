package repositories

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/models"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *models.Bookmark) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Bookmark, error)
	FindAll(ctx context.Context, filter dto.BookmarkFilter) ([]models.Bookmark, error)
	Update(ctx context.Context, bookmark *models.Bookmark) error
	Delete(ctx context.Context, id uuid.UUID) error
}
