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
	"deskhub/pkg/utils"
)

type eventServiceImpl struct {
	eventRepo repositories.EventRepository
}

func NewEventService(eventRepo repositories.EventRepository) services.EventService {
	return &eventServiceImpl{eventRepo: eventRepo}
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	event := &models.Event{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Location:    strings.TrimSpace(req.Location),
		Description: strings.TrimSpace(req.Description),
	}
	if t, ok := utils.ParseDateTime(req.StartAt); ok {
		event.StartAt = &t
	}
	if t, ok := utils.ParseDateTime(req.EndAt); ok {
		event.EndAt = &t
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

func (s *eventServiceImpl) GetEvent(ctx context.Context, id uuid.UUID) (*dto.EventResponse, error) {
	event, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToEventResponses(events), nil
}

func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.findEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		event.Description = strings.TrimSpace(*req.Description)
	}
	if req.StartAt != nil {
		event.StartAt = nil
		if t, ok := utils.ParseDateTime(*req.StartAt); ok {
			event.StartAt = &t
		}
	}
	if req.EndAt != nil {
		event.EndAt = nil
		if t, ok := utils.ParseDateTime(*req.EndAt); ok {
			event.EndAt = &t
		}
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return dto.ToEventResponse(event), nil
}

func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findEvent(ctx, id); err != nil {
		return err
	}
	return s.eventRepo.Delete(ctx, id)
}

// Feed returns every event, undated ones included; the calendar widget drops
// items with a null start on its own.
func (s *eventServiceImpl) Feed(ctx context.Context) ([]dto.FeedItem, error) {
	events, err := s.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FeedItem, 0, len(events))
	for i := range events {
		items = append(items, dto.ToFeedItem(&events[i]))
	}
	return items, nil
}

func (s *eventServiceImpl) findEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("event")
		}
		return nil, err
	}
	return event, nil
}
