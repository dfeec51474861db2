package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/logger"
	"deskhub/pkg/utils"
)

type taskServiceImpl struct {
	taskRepo repositories.TaskRepository
	tagRepo  repositories.TagRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, tagRepo repositories.TagRepository) services.TaskService {
	return &taskServiceImpl{taskRepo: taskRepo, tagRepo: tagRepo}
}

// parseTagNames splits a comma-separated tag string into normalized names.
// Order is preserved; duplicates after lowercasing collapse to the first.
func parseTagNames(raw string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, part := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func (s *taskServiceImpl) resolveTags(ctx context.Context, raw string) ([]models.Tag, error) {
	names := parseTagNames(raw)
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.FindOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, nil
}

// normalizeLinkURL makes file links clickable: backslashes become slashes and
// drive-letter paths get a file:/// prefix. Other kinds pass through.
func normalizeLinkURL(rawURL, kind string) string {
	rawURL = strings.TrimSpace(rawURL)
	if kind != models.LinkKindFile {
		return rawURL
	}
	u := strings.ReplaceAll(rawURL, "\\", "/")
	head := u
	if len(head) > 3 {
		head = head[:3]
	}
	if strings.Contains(head, ":") && !strings.HasPrefix(u, "file://") {
		u = "file:///" + u
	}
	return u
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Status:      models.TaskStatusTodo,
		Priority:    req.Priority,
		Category:    models.TaskCategoryOther,
	}
	if req.Status != "" {
		task.Status = req.Status
	}
	if req.Category != "" {
		task.Category = req.Category
	}

	// A new task starts now unless the client says otherwise. Unparsable
	// dates are dropped rather than rejected.
	now := time.Now()
	task.StartAt = &now
	if req.StartAt != "" {
		if t, ok := utils.ParseDateTime(req.StartAt); ok {
			task.StartAt = &t
		} else {
			task.StartAt = nil
		}
	}
	if req.DueAt != "" {
		if t, ok := utils.ParseDateTime(req.DueAt); ok {
			task.DueAt = &t
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	if req.Tags != "" {
		tags, err := s.resolveTags(ctx, req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.ReplaceTags(ctx, task, tags); err != nil {
			return nil, err
		}
		task.Tags = tags
	}

	logger.InfoContext(ctx, "Task created", "id", task.ID, "title", task.Title)

	return dto.ToTaskResponse(task), nil
}

func (s *taskServiceImpl) GetTask(ctx context.Context, id uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

func (s *taskServiceImpl) ListTasks(ctx context.Context, filter dto.TaskFilter) ([]dto.TaskResponse, error) {
	if filter.Tag != "" {
		filter.Tag = strings.ToLower(strings.TrimSpace(filter.Tag))
	}
	tasks, err := s.taskRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.ToTaskResponses(tasks), nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findTask(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		task.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		task.Description = strings.TrimSpace(*req.Description)
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.StartAt != nil {
		task.StartAt = nil
		if t, ok := utils.ParseDateTime(*req.StartAt); ok {
			task.StartAt = &t
		}
	}
	if req.DueAt != nil {
		task.DueAt = nil
		if t, ok := utils.ParseDateTime(*req.DueAt); ok {
			task.DueAt = &t
		}
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	// Tags are full replacement: an empty string clears every tag.
	if req.Tags != nil {
		tags, err := s.resolveTags(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.taskRepo.ReplaceTags(ctx, task, tags); err != nil {
			return nil, err
		}
		task.Tags = tags
	}

	return dto.ToTaskResponse(task), nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findTask(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func (s *taskServiceImpl) AddNote(ctx context.Context, taskID uuid.UUID, req *dto.CreateTaskNoteRequest) (*dto.TaskNoteResponse, error) {
	if _, err := s.findTask(ctx, taskID); err != nil {
		return nil, err
	}

	note := &models.TaskNote{
		ID:     uuid.New(),
		TaskID: taskID,
		Body:   strings.TrimSpace(req.Body),
	}
	if err := s.taskRepo.AddNote(ctx, note); err != nil {
		return nil, err
	}
	return &dto.TaskNoteResponse{ID: note.ID.String(), Body: note.Body, CreatedAt: note.CreatedAt}, nil
}

func (s *taskServiceImpl) DeleteNote(ctx context.Context, taskID, noteID uuid.UUID) error {
	err := s.taskRepo.DeleteNote(ctx, taskID, noteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("task note")
	}
	return err
}

func (s *taskServiceImpl) AddLink(ctx context.Context, taskID uuid.UUID, req *dto.CreateTaskLinkRequest) (*dto.TaskLinkResponse, error) {
	if _, err := s.findTask(ctx, taskID); err != nil {
		return nil, err
	}

	kind := req.Kind
	if kind == "" {
		kind = models.LinkKindWeb
	}
	link := &models.TaskLink{
		ID:     uuid.New(),
		TaskID: taskID,
		Title:  strings.TrimSpace(req.Title),
		URL:    normalizeLinkURL(req.URL, kind),
		Kind:   kind,
	}
	if err := s.taskRepo.AddLink(ctx, link); err != nil {
		return nil, err
	}
	return &dto.TaskLinkResponse{ID: link.ID.String(), Title: link.Title, URL: link.URL, Kind: link.Kind}, nil
}

func (s *taskServiceImpl) UpdateLink(ctx context.Context, taskID, linkID uuid.UUID, req *dto.UpdateTaskLinkRequest) (*dto.TaskLinkResponse, error) {
	link, err := s.taskRepo.FindLink(ctx, taskID, linkID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task link")
		}
		return nil, err
	}

	if req.Title != nil {
		link.Title = strings.TrimSpace(*req.Title)
	}
	if req.Kind != nil {
		link.Kind = *req.Kind
	}
	if req.URL != nil {
		link.URL = normalizeLinkURL(*req.URL, link.Kind)
	}

	if err := s.taskRepo.UpdateLink(ctx, link); err != nil {
		return nil, err
	}
	return &dto.TaskLinkResponse{ID: link.ID.String(), Title: link.Title, URL: link.URL, Kind: link.Kind}, nil
}

func (s *taskServiceImpl) DeleteLink(ctx context.Context, taskID, linkID uuid.UUID) error {
	err := s.taskRepo.DeleteLink(ctx, taskID, linkID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("task link")
	}
	return err
}

func (s *taskServiceImpl) AddSubtask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubtaskRequest) (*dto.SubtaskResponse, error) {
	if _, err := s.findTask(ctx, taskID); err != nil {
		return nil, err
	}

	subtask := &models.Subtask{
		ID:     uuid.New(),
		TaskID: taskID,
		Title:  strings.TrimSpace(req.Title),
		Status: models.TaskStatusTodo,
	}
	if err := s.taskRepo.AddSubtask(ctx, subtask); err != nil {
		return nil, err
	}
	return &dto.SubtaskResponse{ID: subtask.ID.String(), Title: subtask.Title, Status: subtask.Status}, nil
}

func (s *taskServiceImpl) ToggleSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) (*dto.SubtaskResponse, error) {
	subtask, err := s.taskRepo.FindSubtask(ctx, taskID, subtaskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("subtask")
		}
		return nil, err
	}

	if subtask.Status == models.TaskStatusDone {
		subtask.Status = models.TaskStatusTodo
	} else {
		subtask.Status = models.TaskStatusDone
	}
	if err := s.taskRepo.UpdateSubtask(ctx, subtask); err != nil {
		return nil, err
	}
	return &dto.SubtaskResponse{ID: subtask.ID.String(), Title: subtask.Title, Status: subtask.Status}, nil
}

func (s *taskServiceImpl) DeleteSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) error {
	err := s.taskRepo.DeleteSubtask(ctx, taskID, subtaskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound("subtask")
	}
	return err
}

func (s *taskServiceImpl) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, dto.TagResponse{ID: tag.ID.String(), Name: tag.Name})
	}
	return out, nil
}

func (s *taskServiceImpl) findTask(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task")
		}
		return nil, err
	}
	return task, nil
}
