package activity

import (
	"log/slog"
	"net/http"

	users_middleware "teamcamp/internal/features/users/middleware"
	"teamcamp/internal/util/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ActivityController struct {
	activityService *ActivityService
	logger          *slog.Logger
}

func NewActivityController(activityService *ActivityService, logger *slog.Logger) *ActivityController {
	return &ActivityController{
		activityService: activityService,
		logger:          logger,
	}
}

func (c *ActivityController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/projects/:projectId/activity", c.GetProjectActivity)
}

// GetProjectActivity
// @Summary Get project activity feed
// @Description Return recent activity entries for a project, newest first
// @Tags activity
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param limit query int false "Max entries to return (default 100)"
// @Param offset query int false "Entries to skip"
// @Param beforeDate query string false "Only entries created before this RFC3339 timestamp"
// @Success 200 {object} GetActivityResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/activity [get]
func (c *ActivityController) GetProjectActivity(ctx *gin.Context) {
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

	request := &GetActivityRequest{}
	if err := ctx.ShouldBindQuery(request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.activityService.GetProjectActivity(ctx.Request.Context(), projectID, principal.ID, request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
