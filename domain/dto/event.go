package dto

import (
	"time"

	"deskhub/domain/models"
)

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	StartAt     string `json:"startAt"`
	EndAt       string `json:"endAt"`
	Location    string `json:"location" validate:"omitempty,max=255"`
	Description string `json:"description"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	StartAt     *string `json:"startAt"`
	EndAt       *string `json:"endAt"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	Description *string `json:"description"`
}

type EventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	StartAt     *string   `json:"startAt"`
	EndAt       *string   `json:"endAt"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToEventResponse(e *models.Event) *EventResponse {
	return &EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		StartAt:     FormatTime(e.StartAt),
		EndAt:       FormatTime(e.EndAt),
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToEventResponses(events []models.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, *ToEventResponse(&events[i]))
	}
	return out
}

// FeedItem matches the FullCalendar event-source shape.
type FeedItem struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Start         *string       `json:"start"`
	End           *string       `json:"end"`
	ExtendedProps FeedItemProps `json:"extendedProps"`
}

type FeedItemProps struct {
	Location    string `json:"location"`
	Description string `json:"description"`
}

func ToFeedItem(e *models.Event) FeedItem {
	return FeedItem{
		ID:    e.ID.String(),
		Title: e.Title,
		Start: FormatTime(e.StartAt),
		End:   FormatTime(e.EndAt),
		ExtendedProps: FeedItemProps{
			Location:    e.Location,
			Description: e.Description,
		},
	}
}
