package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"deskhub/domain/models"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	FindAll(ctx context.Context) ([]models.Event, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int) ([]models.Event, error)
	FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}
