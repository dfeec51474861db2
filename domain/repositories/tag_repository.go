package repositories

import (
	"context"

	"deskhub/domain/models"
)

type TagRepository interface {
	// FindOrCreate returns the tag with the given normalized name, creating
	// it if missing. A concurrent insert racing on the unique index is
	// resolved by re-reading the winner's row.
	FindOrCreate(ctx context.Context, name string) (*models.Tag, error)
	FindByName(ctx context.Context, name string) (*models.Tag, error)
	FindAll(ctx context.Context) ([]models.Tag, error)
}
