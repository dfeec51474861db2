package services

import (
	"context"

	"github.com/google/uuid"

	"deskhub/domain/dto"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error)
	ListTasks(ctx context.Context, filter dto.TaskFilter) ([]dto.TaskResponse, error)
	UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error

	AddNote(ctx context.Context, taskID uuid.UUID, req *dto.CreateTaskNoteRequest) (*dto.TaskNoteResponse, error)
	DeleteNote(ctx context.Context, taskID, noteID uuid.UUID) error
	AddLink(ctx context.Context, taskID uuid.UUID, req *dto.CreateTaskLinkRequest) (*dto.TaskLinkResponse, error)
	UpdateLink(ctx context.Context, taskID, linkID uuid.UUID, req *dto.UpdateTaskLinkRequest) (*dto.TaskLinkResponse, error)
	DeleteLink(ctx context.Context, taskID, linkID uuid.UUID) error
	AddSubtask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubtaskRequest) (*dto.SubtaskResponse, error)
	ToggleSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) (*dto.SubtaskResponse, error)
	DeleteSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) error

	ListTags(ctx context.Context) ([]dto.TagResponse, error)
}
