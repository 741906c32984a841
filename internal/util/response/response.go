package response

import (
	"errors"
	"log/slog"
	"net/http"

	"teamcamp/internal/authz"

	"github.com/gin-gonic/gin"
)

// Error maps the service error taxonomy onto HTTP statuses: missing resources
// are 404, denied authorization is 403, infrastructure failures are 500 and
// logged with context, anything else is treated as a client error.
func Error(ctx *gin.Context, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, authz.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, authz.ErrDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case authz.IsInfrastructure(err):
		log.Error("request failed on store access",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// Message writes a plain confirmation body.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}
