package users_middleware

import (
	"net/http"

	users_models "teamcamp/internal/features/users/models"
	users_services "teamcamp/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and adds the principal to context
func AuthMiddleware(identityService *users_services.IdentityService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
			ctx.Abort()
			return
		}

		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		principal, err := identityService.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			ctx.Abort()
			return
		}

		ctx.Set("principal", principal)
		ctx.Next()
	}
}

// GetPrincipalFromContext helper function to extract the principal from gin context
func GetPrincipalFromContext(ctx *gin.Context) (*users_models.Principal, bool) {
	principalInterface, exists := ctx.Get("principal")
	if !exists {
		return nil, false
	}

	principal, ok := principalInterface.(*users_models.Principal)

	return principal, ok
}
