package projects_controllers

import (
	"log/slog"
	"net/http"

	projects_dto "teamcamp/internal/features/projects/dto"
	projects_services "teamcamp/internal/features/projects/services"
	users_middleware "teamcamp/internal/features/users/middleware"
	"teamcamp/internal/util/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
	logger         *slog.Logger
}

func NewProjectController(projectService *projects_services.ProjectService, logger *slog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projectRoutes := router.Group("/projects")

	projectRoutes.GET("", c.GetProjects)
	projectRoutes.POST("", c.CreateProject)
	projectRoutes.GET("/:projectId", c.GetProject)
	projectRoutes.PUT("/:projectId", c.UpdateProject)
	projectRoutes.DELETE("/:projectId", c.DeleteProject)
}

// GetProjects
// @Summary List the caller's projects
// @Description Return every project the caller created or is a member of
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 401 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) GetProjects(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result, err := c.projectService.GetProjects(ctx.Request.Context(), principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// CreateProject
// @Summary Create a project
// @Description Create a project owned by the caller
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 201 {object} projects_dto.ProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.projectService.CreateProject(ctx.Request.Context(), principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// GetProject
// @Summary Get a project
// @Description Return a single project with the caller's role in it
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
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

	result, err := c.projectService.GetProject(ctx.Request.Context(), projectID, principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// UpdateProject
// @Summary Update a project
// @Description Apply a partial update to a project
// @Tags projects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.UpdateProjectRequestDTO true "Fields to change"
// @Success 200 {object} projects_dto.ProjectResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
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

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.projectService.UpdateProject(ctx.Request.Context(), projectID, principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// DeleteProject
// @Summary Delete a project
// @Description Delete a project with its tasks, members and file metadata. Only the creator may do this
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
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

	if err := c.projectService.DeleteProject(ctx.Request.Context(), projectID, principal.ID); err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	response.Message(ctx, http.StatusOK, "Project deleted successfully")
}
