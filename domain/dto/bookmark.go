package dto

import (
	"time"

	"deskhub/domain/models"
)

type CreateBookmarkRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	URL      string `json:"url" validate:"required"`
	Kind     string `json:"kind" validate:"omitempty,oneof=web file app"`
	Category string `json:"category" validate:"omitempty,oneof=daily important personal company reference other"`
	Notes    string `json:"notes"`
}

type UpdateBookmarkRequest struct {
	Title    *string `json:"title" validate:"omitempty,max=200"`
	URL      *string `json:"url"`
	Kind     *string `json:"kind" validate:"omitempty,oneof=web file app"`
	Category *string `json:"category" validate:"omitempty,oneof=daily important personal company reference other"`
	Notes    *string `json:"notes"`
}

// BookmarkFilter narrows the manage listing; fields combine with AND.
type BookmarkFilter struct {
	Query    string
	Category string
}

type BookmarkResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	Category  string    `json:"category"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToBookmarkResponse(b *models.Bookmark) *BookmarkResponse {
	return &BookmarkResponse{
		ID:        b.ID.String(),
		Title:     b.Title,
		URL:       b.URL,
		Kind:      b.Kind,
		Category:  b.Category,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func ToBookmarkResponses(bookmarks []models.Bookmark) []BookmarkResponse {
	out := make([]BookmarkResponse, 0, len(bookmarks))
	for i := range bookmarks {
		out = append(out, *ToBookmarkResponse(&bookmarks[i]))
	}
	return out
}

// BookmarkGroup is one category section on the grouped dashboard.
type BookmarkGroup struct {
	Category  string             `json:"category"`
	Count     int                `json:"count"`
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}
