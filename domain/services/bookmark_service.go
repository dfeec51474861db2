package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type BookmarkService interface {
	CreateBookmark(ctx context.Context, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error)
	GetBookmark(ctx context.Context, id uuid.UUID) (*dto.BookmarkResponse, error)
	ListBookmarks(ctx context.Context, filter dto.BookmarkFilter) ([]dto.BookmarkResponse, error)
	// GroupedBookmarks returns every bookmark bucketed by category in the
	// fixed dashboard order. Empty categories are included.
	GroupedBookmarks(ctx context.Context) ([]dto.BookmarkGroup, error)
	UpdateBookmark(ctx context.Context, id uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.BookmarkResponse, error)
	DeleteBookmark(ctx context.Context, id uuid.UUID) error
}
