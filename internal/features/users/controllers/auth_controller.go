package users_controllers

import (
	"net/http"

	users_dto "teamcamp/internal/features/users/dto"
	users_middleware "teamcamp/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type AuthController struct {
	verifyLimiter *rate.Limiter
}

func NewAuthController() *AuthController {
	return &AuthController{
		// clients poll verify on focus changes; keep token probing cheap to refuse
		verifyLimiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authRoutes := router.Group("/auth")

	authRoutes.GET("/verify", c.Verify)
	authRoutes.GET("/me", c.Me)
}

// Verify
// @Summary Verify the bearer token
// @Description Validate the caller's token and return the identity it carries
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.VerifyResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	if !c.verifyLimiter.Allow() {
		ctx.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Please try again later."})
		return
	}

	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.VerifyResponseDTO{
		User: users_dto.VerifiedUserDTO{
			ID:    principal.ID,
			Email: principal.Email,
			UserMetadata: map[string]string{
				"full_name":  principal.FullName,
				"avatar_url": principal.AvatarURL,
			},
		},
	})
}

// Me
// @Summary Get current user information
// @Description Return the authenticated user's profile claims
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users_dto.MeResponseDTO
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	principal, ok := users_middleware.GetPrincipalFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, users_dto.MeResponseDTO{
		ID:        principal.ID,
		Email:     principal.Email,
		FullName:  principal.FullName,
		AvatarURL: principal.AvatarURL,
		Provider:  principal.Provider,
	})
}
