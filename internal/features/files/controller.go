package files

import (
	"log/slog"
	"net/http"

	users_middleware "teamcamp/internal/features/users/middleware"
	"teamcamp/internal/util/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FileController struct {
	fileService *FileService
	logger      *slog.Logger
}

func NewFileController(fileService *FileService, logger *slog.Logger) *FileController {
	return &FileController{
		fileService: fileService,
		logger:      logger,
	}
}

func (c *FileController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/files", c.GetProjectFiles)
	router.POST("/projects/:projectId/files", c.RegisterFile)
	router.DELETE("/files/:fileId", c.DeleteFile)
}

// GetProjectFiles
// @Summary List project files
// @Description Return file metadata for a project, newest first
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} ListFilesResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/files [get]
func (c *FileController) GetProjectFiles(ctx *gin.Context) {
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

	result, err := c.fileService.GetProjectFiles(ctx.Request.Context(), projectID, principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// RegisterFile
// @Summary Register an uploaded file
// @Description Record metadata for a file already placed in the object store
// @Tags files
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body RegisterFileRequest true "File metadata"
// @Success 201 {object} FileRecord
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects/{projectId}/files [post]
func (c *FileController) RegisterFile(ctx *gin.Context) {
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

	var request RegisterFileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.fileService.RegisterFile(ctx.Request.Context(), projectID, principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// DeleteFile
// @Summary Delete a file
// @Description Delete a file record and its stored object. Allowed for the project creator, the uploader, and project admins
// @Tags files
// @Produce json
// @Security BearerAuth
// @Param fileId path string true "File ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{fileId} [delete]
func (c *FileController) DeleteFile(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	fileID, err := uuid.Parse(ctx.Param("fileId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file ID"})
		return
	}

	if err := c.fileService.DeleteFile(ctx.Request.Context(), fileID, principal.ID); err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	response.Message(ctx, http.StatusOK, "File deleted successfully")
}
