package tasks

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string       `json:"title" binding:"required,min=1,max=500"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssignedTo  *uuid.UUID   `json:"assignedTo"`
	DueDate     *time.Time   `json:"dueDate"`
}

type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	AssignedTo  *uuid.UUID    `json:"assignedTo"`
	DueDate     *time.Time    `json:"dueDate"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

// AssignedTask is a task annotated with its project name for cross-project
// listings.
type AssignedTask struct {
	Task
	ProjectName string `json:"projectName" gorm:"column:project_name"`
}

type MyTasksResponse struct {
	Tasks []*AssignedTask `json:"tasks"`
}
