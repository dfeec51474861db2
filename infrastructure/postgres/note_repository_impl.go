package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/models"
	"deskhub/domain/repositories"
)

type NoteRepositoryImpl struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) repositories.NoteRepository {
	return &NoteRepositoryImpl{db: db}
}

func (r *NoteRepositoryImpl) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&note).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepositoryImpl) FindAll(ctx context.Context, query string) ([]models.Note, error) {
	var notes []models.Note
	q := r.db.WithContext(ctx).Model(&models.Note{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(body) LIKE LOWER(?)", like, like)
	}
	err := q.Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).Order("created_at desc").Limit(limit).Find(&notes).Error
	return notes, err
}

func (r *NoteRepositoryImpl) Update(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

func (r *NoteRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{}).Error
}
