package httpapi

import (
	"net/http"
	"strings"

	"mentor-chat/auth"
	"mentor-chat/domain"

	"github.com/gin-gonic/gin"
)

const viewerKey = "viewer"

// requireViewer resolves the authenticated viewer and aborts with 401 when
// the token is missing or invalid. Browsers cannot set headers on websocket
// upgrades, so a token query parameter is accepted there as well.
func (s *Server) requireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" {
			raw = c.Query("token")
		}
		viewer, err := auth.ResolveViewer(s.secret, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(viewerKey, viewer)
		c.Next()
	}
}

func viewerFrom(c *gin.Context) domain.Viewer {
	v, _ := c.Get(viewerKey)
	return v.(domain.Viewer)
}
