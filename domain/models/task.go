package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TaskStatusTodo  = "todo"
	TaskStatusDoing = "doing"
	TaskStatusDone  = "done"

	TaskCategoryWork     = "work"
	TaskCategoryPersonal = "personal"
	TaskCategoryOther    = "other"
)

const (
	LinkKindWeb  = "web"
	LinkKindFile = "file"
	LinkKindApp  = "app"
)

// Task exclusively owns its notes, links, and subtasks: deleting the task
// cascades to all three. Tags are shared and survive task deletion.
type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	Title       string    `gorm:"size:200;not null"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"size:20;default:'todo'"` // todo, doing, done
	StartAt     *time.Time
	DueAt       *time.Time
	Priority    int    `gorm:"default:0"`
	Category    string `gorm:"size:20;default:'other'"` // work, personal, other
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Notes    []TaskNote `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Links    []TaskLink `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Subtasks []Subtask  `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	Tags     []Tag      `gorm:"many2many:task_tags"`
}

func (Task) TableName() string {
	return "tasks"
}

type TaskNote struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TaskNote) TableName() string {
	return "task_notes"
}

type TaskLink struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:200;not null"`
	URL       string    `gorm:"type:text;not null"` // http(s):// or file:///
	Kind      string    `gorm:"size:20;default:'web'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TaskLink) TableName() string {
	return "task_links"
}

type Subtask struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid"`
	TaskID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Status    string    `gorm:"size:20;default:'todo'"` // todo, done
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Subtask) TableName() string {
	return "subtasks"
}
