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

type MembershipController struct {
	membershipService *projects_services.MembershipService
	logger            *slog.Logger
}

func NewMembershipController(
	membershipService *projects_services.MembershipService,
	logger *slog.Logger,
) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
		logger:            logger,
	}
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	memberRoutes := router.Group("/projects/:projectId/members")

	memberRoutes.GET("", c.GetMembers)
	memberRoutes.POST("", c.AddMember)
	memberRoutes.PUT("/:memberId", c.UpdateMemberRole)
	memberRoutes.DELETE("/:memberId", c.RemoveMember)
}

// GetMembers
// @Summary List project members
// @Description Return authenticated members and guests of a project in one list
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Success 200 {object} projects_dto.GetMembersResponseDTO
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/members [get]
func (c *MembershipController) GetMembers(ctx *gin.Context) {
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

	result, err := c.membershipService.GetMembers(ctx.Request.Context(), projectID, principal.ID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// AddMember
// @Summary Add a project member
// @Description Add an authenticated member by user id, or a guest by name and email
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param request body projects_dto.AddMemberRequestDTO true "Member data"
// @Success 201 {object} projects_dto.MemberResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/members [post]
func (c *MembershipController) AddMember(ctx *gin.Context) {
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

	var request projects_dto.AddMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := c.membershipService.AddMember(ctx.Request.Context(), projectID, principal.ID, &request)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, result)
}

// UpdateMemberRole
// @Summary Change a member's role
// @Description Update the role of an authenticated member or guest
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param memberId path string true "Membership or guest ID"
// @Param request body projects_dto.UpdateMemberRoleRequestDTO true "New role"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/members/{memberId} [put]
func (c *MembershipController) UpdateMemberRole(ctx *gin.Context) {
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

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	var request projects_dto.UpdateMemberRoleRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = c.membershipService.UpdateMemberRole(ctx.Request.Context(), projectID, principal.ID, memberID, request.Role)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	response.Message(ctx, http.StatusOK, "Member role updated successfully")
}

// RemoveMember
// @Summary Remove a project member
// @Description Remove an authenticated member or guest from the project
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "Project ID"
// @Param memberId path string true "Membership or guest ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{projectId}/members/{memberId} [delete]
func (c *MembershipController) RemoveMember(ctx *gin.Context) {
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

	memberID, err := uuid.Parse(ctx.Param("memberId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	err = c.membershipService.RemoveMember(ctx.Request.Context(), projectID, principal.ID, memberID)
	if err != nil {
		response.Error(ctx, c.logger, err)
		return
	}

	response.Message(ctx, http.StatusOK, "Member removed successfully")
}
