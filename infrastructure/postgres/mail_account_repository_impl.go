package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskhub/domain/models"
	"deskhub/domain/repositories"
)

type GmailAccountRepositoryImpl struct {
	db *gorm.DB
}

func NewGmailAccountRepository(db *gorm.DB) repositories.GmailAccountRepository {
	return &GmailAccountRepositoryImpl{db: db}
}

func (r *GmailAccountRepositoryImpl) Upsert(ctx context.Context, account *models.GmailAccount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_key", "updated_at"}),
	}).Create(account).Error
}

func (r *GmailAccountRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.GmailAccount, error) {
	var account models.GmailAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *GmailAccountRepositoryImpl) FindAll(ctx context.Context) ([]models.GmailAccount, error) {
	var accounts []models.GmailAccount
	err := r.db.WithContext(ctx).Order("email asc").Find(&accounts).Error
	return accounts, err
}

func (r *GmailAccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GmailAccount{}).Error
}

type OutlookAccountRepositoryImpl struct {
	db *gorm.DB
}

func NewOutlookAccountRepository(db *gorm.DB) repositories.OutlookAccountRepository {
	return &OutlookAccountRepositoryImpl{db: db}
}

func (r *OutlookAccountRepositoryImpl) Upsert(ctx context.Context, account *models.OutlookAccount) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"token_key", "updated_at"}),
	}).Create(account).Error
}

func (r *OutlookAccountRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.OutlookAccount, error) {
	var account models.OutlookAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *OutlookAccountRepositoryImpl) FindAll(ctx context.Context) ([]models.OutlookAccount, error) {
	var accounts []models.OutlookAccount
	err := r.db.WithContext(ctx).Order("email asc").Find(&accounts).Error
	return accounts, err
}

func (r *OutlookAccountRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.OutlookAccount{}).Error
}
