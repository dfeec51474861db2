package dto

import (
	"time"

	"deskhub/domain/models"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=todo doing done"`
	StartAt     string `json:"startAt"`
	DueAt       string `json:"dueAt"`
	Priority    int    `json:"priority"`
	Category    string `json:"category" validate:"omitempty,oneof=work personal other"`
	Tags        string `json:"tags"` // comma-separated
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=todo doing done"`
	StartAt     *string `json:"startAt"`
	DueAt       *string `json:"dueAt"`
	Priority    *int    `json:"priority"`
	Category    *string `json:"category" validate:"omitempty,oneof=work personal other"`
	Tags        *string `json:"tags"`
}

// TaskFilter narrows ListTasks; all present fields combine with AND.
type TaskFilter struct {
	Query    string
	Status   string
	Category string
	Tag      string
}

type CreateTaskNoteRequest struct {
	Body string `json:"body" validate:"required"`
}

type CreateTaskLinkRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	URL   string `json:"url" validate:"required"`
	Kind  string `json:"kind" validate:"omitempty,oneof=web file app"`
}

type UpdateTaskLinkRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
	URL   *string `json:"url"`
	Kind  *string `json:"kind" validate:"omitempty,oneof=web file app"`
}

type CreateSubtaskRequest struct {
	Title string `json:"title" validate:"required,max=200"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskNoteResponse struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type TaskLinkResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Kind  string `json:"kind"`
}

type SubtaskResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type TaskResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Status      string             `json:"status"`
	StartAt     *string            `json:"startAt"`
	DueAt       *string            `json:"dueAt"`
	Priority    int                `json:"priority"`
	Category    string             `json:"category"`
	Tags        []TagResponse      `json:"tags"`
	Notes       []TaskNoteResponse `json:"notes"`
	Links       []TaskLinkResponse `json:"links"`
	Subtasks    []SubtaskResponse  `json:"subtasks"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func ToTaskResponse(t *models.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		StartAt:     FormatTime(t.StartAt),
		DueAt:       FormatTime(t.DueAt),
		Priority:    t.Priority,
		Category:    t.Category,
		Tags:        make([]TagResponse, 0, len(t.Tags)),
		Notes:       make([]TaskNoteResponse, 0, len(t.Notes)),
		Links:       make([]TaskLinkResponse, 0, len(t.Links)),
		Subtasks:    make([]SubtaskResponse, 0, len(t.Subtasks)),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	for _, tag := range t.Tags {
		resp.Tags = append(resp.Tags, TagResponse{ID: tag.ID.String(), Name: tag.Name})
	}
	for _, n := range t.Notes {
		resp.Notes = append(resp.Notes, TaskNoteResponse{ID: n.ID.String(), Body: n.Body, CreatedAt: n.CreatedAt})
	}
	for _, l := range t.Links {
		resp.Links = append(resp.Links, TaskLinkResponse{ID: l.ID.String(), Title: l.Title, URL: l.URL, Kind: l.Kind})
	}
	for _, s := range t.Subtasks {
		resp.Subtasks = append(resp.Subtasks, SubtaskResponse{ID: s.ID.String(), Title: s.Title, Status: s.Status})
	}
	return resp
}

func ToTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, *ToTaskResponse(&tasks[i]))
	}
	return out
}
