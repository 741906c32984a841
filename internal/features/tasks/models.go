package tasks

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}

	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}

	return false
}

type Task struct {
	ID          uuid.UUID    `json:"id"          gorm:"column:id;primaryKey"`
	ProjectID   uuid.UUID    `json:"projectId"   gorm:"column:project_id;index"`
	Title       string       `json:"title"       gorm:"column:title"`
	Description string       `json:"description" gorm:"column:description"`
	Status      TaskStatus   `json:"status"      gorm:"column:status"`
	Priority    TaskPriority `json:"priority"    gorm:"column:priority"`
	AssignedTo  *uuid.UUID   `json:"assignedTo"  gorm:"column:assigned_to;index"`
	DueDate     *time.Time   `json:"dueDate"     gorm:"column:due_date"`
	CreatedBy   uuid.UUID    `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time    `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time    `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
