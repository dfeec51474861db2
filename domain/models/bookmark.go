package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	BookmarkCategoryDaily     = "daily"
	BookmarkCategoryImportant = "important"
	BookmarkCategoryPersonal  = "personal"
	BookmarkCategoryCompany   = "company"
	BookmarkCategoryReference = "reference"
	BookmarkCategoryOther     = "other"
)

// BookmarkCategories is the fixed display order for the grouped dashboard.
var BookmarkCategories = []string{
	BookmarkCategoryDaily,
	BookmarkCategoryImportant,
	BookmarkCategoryPersonal,
	BookmarkCategoryCompany,
	BookmarkCategoryReference,
	BookmarkCategoryOther,
}

type Bookmark struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title     string    `gorm:"size:200;not null"`
	URL       string    `gorm:"type:text;not null"` // http(s):// or file:///
	Kind      string    `gorm:"size:20;default:'web'"`  // web, file, app
	Category  string    `gorm:"size:20;default:'other';not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
