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
)

type bookmarkServiceImpl struct {
	bookmarkRepo repositories.BookmarkRepository
}

func NewBookmarkService(bookmarkRepo repositories.BookmarkRepository) services.BookmarkService {
	return &bookmarkServiceImpl{bookmarkRepo: bookmarkRepo}
}

func (s *bookmarkServiceImpl) CreateBookmark(ctx context.Context, req *dto.CreateBookmarkRequest) (*dto.BookmarkResponse, error) {
	kind := req.Kind
	if kind == "" {
		kind = models.LinkKindWeb
	}
	category := req.Category
	if category == "" {
		category = models.BookmarkCategoryOther
	}

	bookmark := &models.Bookmark{
		ID:       uuid.New(),
		Title:    strings.TrimSpace(req.Title),
		URL:      normalizeLinkURL(req.URL, kind),
		Kind:     kind,
		Category: category,
		Notes:    strings.TrimSpace(req.Notes),
	}
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, err
	}
	return dto.ToBookmarkResponse(bookmark), nil
}

func (s *bookmarkServiceImpl) GetBookmark(ctx context.Context, id uuid.UUID) (*dto.BookmarkResponse, error) {
	bookmark, err := s.findBookmark(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToBookmarkResponse(bookmark), nil
}

func (s *bookmarkServiceImpl) ListBookmarks(ctx context.Context, filter dto.BookmarkFilter) ([]dto.BookmarkResponse, error) {
	bookmarks, err := s.bookmarkRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.ToBookmarkResponses(bookmarks), nil
}

func (s *bookmarkServiceImpl) GroupedBookmarks(ctx context.Context) ([]dto.BookmarkGroup, error) {
	bookmarks, err := s.bookmarkRepo.FindAll(ctx, dto.BookmarkFilter{})
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.BookmarkResponse)
	for i := range bookmarks {
		b := &bookmarks[i]
		category := b.Category
		if category == "" {
			category = models.BookmarkCategoryOther
		}
		byCategory[category] = append(byCategory[category], *dto.ToBookmarkResponse(b))
	}

	groups := make([]dto.BookmarkGroup, 0, len(models.BookmarkCategories))
	for _, category := range models.BookmarkCategories {
		items := byCategory[category]
		if items == nil {
			items = []dto.BookmarkResponse{}
		}
		groups = append(groups, dto.BookmarkGroup{Category: category, Count: len(items), Bookmarks: items})
	}
	return groups, nil
}

func (s *bookmarkServiceImpl) UpdateBookmark(ctx context.Context, id uuid.UUID, req *dto.UpdateBookmarkRequest) (*dto.BookmarkResponse, error) {
	bookmark, err := s.findBookmark(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		bookmark.Title = strings.TrimSpace(*req.Title)
	}
	if req.Kind != nil {
		bookmark.Kind = *req.Kind
	}
	if req.URL != nil {
		bookmark.URL = normalizeLinkURL(*req.URL, bookmark.Kind)
	}
	if req.Category != nil && *req.Category != "" {
		bookmark.Category = *req.Category
	}
	if req.Notes != nil {
		bookmark.Notes = strings.TrimSpace(*req.Notes)
	}

	if err := s.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, err
	}
	return dto.ToBookmarkResponse(bookmark), nil
}

func (s *bookmarkServiceImpl) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findBookmark(ctx, id); err != nil {
		return err
	}
	return s.bookmarkRepo.Delete(ctx, id)
}

func (s *bookmarkServiceImpl) findBookmark(ctx context.Context, id uuid.UUID) (*models.Bookmark, error) {
	bookmark, err := s.bookmarkRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("bookmark")
		}
		return nil, err
	}
	return bookmark, nil
}
