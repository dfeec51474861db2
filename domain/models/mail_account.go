package models

import (
	"time"

	"github.com/google/uuid"
)

// One row per connected mailbox. TokenKey addresses the serialized credential
// blob in the token store; deleting the row also deletes the blob
// (best-effort).

type GmailAccount struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	TokenKey  string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (GmailAccount) TableName() string {
	return "gmail_accounts"
}

type OutlookAccount struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Email     string    `gorm:"size:255;uniqueIndex;not null"`
	TokenKey  string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OutlookAccount) TableName() string {
	return "outlook_accounts"
}
