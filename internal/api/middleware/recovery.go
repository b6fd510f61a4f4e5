package middleware

import (
	"net/http"

	"garden-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a handler into a 500 response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", recovered).
			Error("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	})
}
