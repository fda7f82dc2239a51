package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"marketplace-service/internal/session"
	"marketplace-service/internal/util"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// authMiddleware resolves the bearer token to a session and aborts with
// 401 on failure. Expired or unknown tokens are cleared so clients drop
// their stale credentials.
func authMiddleware(sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		sess, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			util.SessionLookupsFailed.Inc()
			_ = sessions.Clear(c.Request.Context(), token)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// requireRole aborts with 403 unless the session carries the role.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := currentSession(c)
		if sess == nil || sess.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
			return
		}
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
