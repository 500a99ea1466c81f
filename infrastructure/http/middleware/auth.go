package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const SubjectKey = "subject"

// BearerAuth rejects requests without a valid "Authorization: Bearer <token>" header.
func BearerAuth(log *slog.Logger, validate func(token string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token is missing"})
			return
		}
		subject, err := validate(token)
		if err != nil {
			log.Debug("Rejected bearer token", "request_id", GetRequestID(c), "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set(SubjectKey, subject)
		c.Next()
	}
}
