package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/repositories"
)

type BookmarkRepositoryImpl struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) repositories.BookmarkRepository {
	return &BookmarkRepositoryImpl{db: db}
}

func (r *BookmarkRepositoryImpl) Create(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *BookmarkRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Bookmark, error) {
	var bookmark models.Bookmark
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bookmark).Error
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *BookmarkRepositoryImpl) FindAll(ctx context.Context, filter dto.BookmarkFilter) ([]models.Bookmark, error) {
	var bookmarks []models.Bookmark
	q := r.db.WithContext(ctx).Model(&models.Bookmark{})
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(url) LIKE LOWER(?) OR LOWER(notes) LIKE LOWER(?)", like, like, like)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	err := q.Order("category asc, created_at desc").Find(&bookmarks).Error
	return bookmarks, err
}

func (r *BookmarkRepositoryImpl) Update(ctx context.Context, bookmark *models.Bookmark) error {
	return r.db.WithContext(ctx).Save(bookmark).Error
}

func (r *BookmarkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Bookmark{}).Error
}
