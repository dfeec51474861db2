package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"deskhub/domain/dto"
	"deskhub/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	FindAll(ctx context.Context, filter dto.TaskFilter) ([]models.Task, error)
	FindOpenByDue(ctx context.Context, limit int) ([]models.Task, error)
	FindDueBetween(ctx context.Context, from, to time.Time) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	ReplaceTags(ctx context.Context, task *models.Task, tags []models.Tag) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddNote(ctx context.Context, note *models.TaskNote) error
	DeleteNote(ctx context.Context, taskID, noteID uuid.UUID) error
	AddLink(ctx context.Context, link *models.TaskLink) error
	FindLink(ctx context.Context, taskID, linkID uuid.UUID) (*models.TaskLink, error)
	UpdateLink(ctx context.Context, link *models.TaskLink) error
	DeleteLink(ctx context.Context, taskID, linkID uuid.UUID) error
	AddSubtask(ctx context.Context, subtask *models.Subtask) error
	FindSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) (*models.Subtask, error)
	UpdateSubtask(ctx context.Context, subtask *models.Subtask) error
	DeleteSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) error
}
