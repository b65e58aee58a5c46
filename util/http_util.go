// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	stockroom_errors "github.com/stockroom-app/api/errors"
	logger "github.com/stockroom-app/api/logging"
)

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetUserIDFromContext returns the authenticated principal's id, set by the
// auth middleware. Missing id means the request is unauthenticated.
func GetUserIDFromContext(c *gin.Context) (string, error) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", stockroom_errors.ErrUnauthorized
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", stockroom_errors.ErrUnauthorized
	}
	return id, nil
}

// GetGlobalRoleFromContext returns the authenticated principal's global role
// claim, set by the auth middleware.
func GetGlobalRoleFromContext(c *gin.Context) string {
	role, exists := c.Get("globalRole")
	if !exists {
		return ""
	}
	r, _ := role.(string)
	return r
}
