package tasks

import (
	"log/slog"
	"net/http"

	users_middleware "teamcamp/internal/features/users/middleware"
	"teamcamp/internal/util/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaskController struct {
	taskService *TaskService
	logger      *slog.Logger
}

func NewTaskController(taskService *TaskService, logger *slog.Logger) *TaskController {
	return &TaskController{
		taskService: taskService,
		logger:      logger,
	}
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/tasks", c.GetProjectTasks)
	router.POST("/projects/:projectId/tasks", c.CreateTask)
	router.PUT("/tasks/:taskId", c.UpdateTask)
	router.DELETE("/tasks/:taskId", c.DeleteTask)
	router.GET("/my-tasks", c.GetMyTasks)
}

// GetProjectTasks
// @Summary List project tasks
// @Description Return every task of a project in creation order
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} ListTasksResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/tasks [get]
func (c *TaskController) GetProjectTasks(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	result, err := c.taskService.GetProjectTasks(ctx.Request.Context(), projectID, principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CreateTask
// @Summary Create a task
// @Description Create a task in a project
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body CreateTaskRequest true "Task data"
// @Success 201 {object} Task
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var request CreateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := c.taskService.CreateTask(ctx.Request.Context(), projectID, principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, task)
}

// UpdateTask
// @Summary Update a task
// @Description Apply a partial update to a task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Param request body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} Task
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	var request UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := c.taskService.UpdateTask(ctx.Request.Context(), taskID, principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, task)
}

// DeleteTask
// @Summary Delete a task
// @Description Delete a task from its project
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param taskId path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tasks/{taskId} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID"})
		return
	}

	if err := c.taskService.DeleteTask(ctx.Request.Context(), taskID, principal.ID); err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	response.Message(ctx, http.StatusOK, "Task deleted successfully")
}

// GetMyTasks
// @Summary List the caller's assigned tasks
// @Description Return tasks assigned to the caller across all projects
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MyTasksResponse
// @Failure 401 {object} map[string]string
// @Router /my-tasks [get]
func (c *TaskController) GetMyTasks(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := c.taskService.GetMyTasks(ctx.Request.Context(), principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
