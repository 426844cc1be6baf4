package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fkkmemi/boardsync/internal/server/auth"
)

const sourceKey = "event_source"

// authMiddleware verifies the bearer token the trigger source presents and
// stores the source identifier for log correlation.
func authMiddleware(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		source, err := auth.GetSourceFromToken(token, []byte(secretKey))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(sourceKey, source)
		c.Next()
	}
}
