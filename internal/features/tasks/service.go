package tasks

import (
	"context"
	"fmt"

	"teamcamp/internal/authz"
	"teamcamp/internal/features/activity"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository  *TaskRepository
	resolver        *authz.Resolver
	activityService *activity.ActivityService
}

func NewTaskService(
	taskRepository *TaskRepository,
	resolver *authz.Resolver,
	activityService *activity.ActivityService,
) *TaskService {
	return &TaskService{
		taskRepository:  taskRepository,
		resolver:        resolver,
		activityService: activityService,
	}
}

func (s *TaskService) GetProjectTasks(
	ctx context.Context,
	projectID, userID uuid.UUID,
) (*ListTasksResponse, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionViewTasks); err != nil {
		return nil, err
	}

	tasksList, err := s.taskRepository.GetByProject(ctx, projectID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	return &ListTasksResponse{Tasks: tasksList}, nil
}

func (s *TaskService) CreateTask(
	ctx context.Context,
	projectID, userID uuid.UUID,
	request *CreateTaskRequest,
) (*Task, error) {
	if err := s.resolver.Authorize(ctx, projectID, userID, authz.ActionCreateTask); err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = TaskStatusTodo
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid task status: %s", status)
	}

	priority := request.Priority
	if priority == "" {
		priority = TaskPriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid task priority: %s", priority)
	}

	task := &Task{
		ProjectID:   projectID,
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  request.AssignedTo,
		DueDate:     request.DueDate,
		CreatedBy:   userID,
	}

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Created task %q", task.Title), &userID, &projectID)

	return task, nil
}

// UpdateTask applies only the fields present in the request. Authorization is
// checked against the project the task belongs to.
func (s *TaskService) UpdateTask(
	ctx context.Context,
	taskID, userID uuid.UUID,
	request *UpdateTaskRequest,
) (*Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.resolver.Authorize(ctx, task.ProjectID, userID, authz.ActionEditTask); err != nil {
		return nil, err
	}

	if request.Title != nil {
		task.Title = *request.Title
	}
	if request.Description != nil {
		task.Description = *request.Description
	}
	if request.Status != nil {
		if !request.Status.IsValid() {
			return nil, fmt.Errorf("invalid task status: %s", *request.Status)
		}
		task.Status = *request.Status
	}
	if request.Priority != nil {
		if !request.Priority.IsValid() {
			return nil, fmt.Errorf("invalid task priority: %s", *request.Priority)
		}
		task.Priority = *request.Priority
	}
	if request.AssignedTo != nil {
		task.AssignedTo = request.AssignedTo
	}
	if request.DueDate != nil {
		task.DueDate = request.DueDate
	}

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Updated task %q", task.Title), &userID, &task.ProjectID)

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID, userID uuid.UUID) error {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.resolver.Authorize(ctx, task.ProjectID, userID, authz.ActionDeleteTask); err != nil {
		return err
	}

	if err := s.taskRepository.Delete(ctx, taskID); err != nil {
		return &authz.InfrastructureError{Err: err}
	}

	s.activityService.Record(ctx, fmt.Sprintf("Deleted task %q", task.Title), &userID, &task.ProjectID)

	return nil
}

// GetMyTasks needs no per-project authorization: assignment to the user is
// itself the visibility grant.
func (s *TaskService) GetMyTasks(ctx context.Context, userID uuid.UUID) (*MyTasksResponse, error) {
	assigned, err := s.taskRepository.GetAssignedToUser(ctx, userID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}

	return &MyTasksResponse{Tasks: assigned}, nil
}

func (s *TaskService) getTask(ctx context.Context, taskID uuid.UUID) (*Task, error) {
	task, err := s.taskRepository.GetByID(ctx, taskID)
	if err != nil {
		return nil, &authz.InfrastructureError{Err: err}
	}
	if task == nil {
		return nil, fmt.Errorf("task: %w", authz.ErrNotFound)
	}

	return task, nil
}
