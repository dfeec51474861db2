package repositories

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/models"
)

type GmailAccountRepository interface {
	// Upsert inserts the account or, when the email already exists,
	// refreshes its token key.
	Upsert(ctx context.Context, account *models.GmailAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.GmailAccount, error)
	FindAll(ctx context.Context) ([]models.GmailAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type OutlookAccountRepository interface {
	Upsert(ctx context.Context, account *models.OutlookAccount) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.OutlookAccount, error)
	FindAll(ctx context.Context) ([]models.OutlookAccount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
