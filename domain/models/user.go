package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"` // stored lowercased
	PasswordHash string    `gorm:"size:255;not null"`
	Name         string    `gorm:"size:120"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}
