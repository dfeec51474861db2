package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error)
	ListEvents(ctx context.Context) ([]dto.EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	// Feed returns all events in the calendar widget's wire shape.
	Feed(ctx context.Context) ([]dto.FeedItem, error)
}
