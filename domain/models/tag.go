package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag names are normalized to lowercase before lookup or insert. Tags are
// shared across tasks and are never deleted when a task goes away, even if
// that leaves them unreferenced.
type Tag struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name      string    `gorm:"size:50;uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tag) TableName() string {
	return "tags"
}
