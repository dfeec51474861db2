package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title     string    `gorm:"size:200;not null"`
	Body      string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Note) TableName() string {
	return "notes"
}
