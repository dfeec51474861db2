package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Preload("Links").
		Preload("Subtasks", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc") }).
		Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// taskOrder keeps undated tasks last, then nearest due date, then priority.
// The boolean sort key works on both postgres and sqlite.
const taskOrder = "(due_at IS NULL) asc, due_at asc, priority desc"

func (r *TaskRepositoryImpl) FindAll(ctx context.Context, filter dto.TaskFilter) ([]models.Task, error) {
	var tasks []models.Task
	q := r.db.WithContext(ctx).Model(&models.Task{}).
		Preload("Tags").
		Preload("Subtasks")
	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		q = q.Where("LOWER(tasks.title) LIKE LOWER(?) OR LOWER(tasks.description) LIKE LOWER(?)", like, like)
	}
	if filter.Status != "" {
		q = q.Where("tasks.status = ?", filter.Status)
	}
	if filter.Category != "" {
		q = q.Where("tasks.category = ?", filter.Category)
	}
	if filter.Tag != "" {
		q = q.Joins("JOIN task_tags ON task_tags.task_id = tasks.id").
			Joins("JOIN tags ON tags.id = task_tags.tag_id").
			Where("tags.name = ?", filter.Tag)
	}
	err := q.Order(taskOrder).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindOpenByDue(ctx context.Context, limit int) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("status <> ?", models.TaskStatusDone).
		Order(taskOrder).
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) FindDueBetween(ctx context.Context, from, to time.Time) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.WithContext(ctx).
		Where("status <> ?", models.TaskStatusDone).
		Where("due_at >= ? AND due_at < ?", from, to).
		Order("due_at asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Omit("Tags", "Notes", "Links", "Subtasks").Save(task).Error
}

func (r *TaskRepositoryImpl) ReplaceTags(ctx context.Context, task *models.Task, tags []models.Tag) error {
	return r.db.WithContext(ctx).Model(task).Association("Tags").Replace(tags)
}

// Delete removes the task together with its notes, links, subtasks, and tag
// join rows. Tag rows themselves stay.
func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.Task{ID: id}).Error
}

func (r *TaskRepositoryImpl) AddNote(ctx context.Context, note *models.TaskNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *TaskRepositoryImpl) DeleteNote(ctx context.Context, taskID, noteID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", noteID, taskID).
		Delete(&models.TaskNote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) AddLink(ctx context.Context, link *models.TaskLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *TaskRepositoryImpl) FindLink(ctx context.Context, taskID, linkID uuid.UUID) (*models.TaskLink, error) {
	var link models.TaskLink
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", linkID, taskID).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *TaskRepositoryImpl) UpdateLink(ctx context.Context, link *models.TaskLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

func (r *TaskRepositoryImpl) DeleteLink(ctx context.Context, taskID, linkID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", linkID, taskID).
		Delete(&models.TaskLink{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) AddSubtask(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Create(subtask).Error
}

func (r *TaskRepositoryImpl) FindSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) (*models.Subtask, error) {
	var subtask models.Subtask
	err := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", subtaskID, taskID).
		First(&subtask).Error
	if err != nil {
		return nil, err
	}
	return &subtask, nil
}

func (r *TaskRepositoryImpl) UpdateSubtask(ctx context.Context, subtask *models.Subtask) error {
	return r.db.WithContext(ctx).Save(subtask).Error
}

func (r *TaskRepositoryImpl) DeleteSubtask(ctx context.Context, taskID, subtaskID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND task_id = ?", subtaskID, taskID).
		Delete(&models.Subtask{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
