package tasks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *Task) error {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}
	task.UpdatedAt = task.CreatedAt

	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID returns nil without error when the task does not exist.
func (r *TaskRepository) GetByID(ctx context.Context, taskID uuid.UUID) (*Task, error) {
	var task Task

	err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetByProject(ctx context.Context, projectID uuid.UUID) ([]*Task, error) {
	tasksList := make([]*Task, 0)

	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&tasksList).Error

	return tasksList, err
}

func (r *TaskRepository) Update(ctx context.Context, task *Task) error {
	task.UpdatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", taskID).
		Delete(&Task{}).Error
}

// GetAssignedToUser returns the user's assigned tasks across all projects,
// each joined to its project name.
func (r *TaskRepository) GetAssignedToUser(ctx context.Context, userID uuid.UUID) ([]*AssignedTask, error) {
	assigned := make([]*AssignedTask, 0)

	err := r.db.WithContext(ctx).
		Table("tasks t").
		Select("t.*, p.name AS project_name").
		Joins("LEFT JOIN projects p ON t.project_id = p.id").
		Where("t.assigned_to = ?", userID).
		Order("t.created_at DESC").
		Scan(&assigned).Error

	return assigned, err
}
