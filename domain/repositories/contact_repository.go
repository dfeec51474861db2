package repositories

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	FindAll(ctx context.Context, query string) ([]models.Contact, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id uuid.UUID) error
}
