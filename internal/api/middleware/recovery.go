package middleware

import (
	"net/http"

	"task-orchestrator-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into a generic 500 response so a single bad
// request cannot take the server down
func Recovery() gin.HandlerFunc {
	log := logger.WithComponent("recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"panic":      r,
					"path":       c.Request.URL.Path,
					"request_id": c.GetString("request_id"),
				}).Error("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
