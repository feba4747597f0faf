package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TWO-MIX/mind-space/internal/shared/utils/response"
	"github.com/TWO-MIX/mind-space/internal/users"
)

// SessionHeader carries the opaque session ID issued by POST /sessions.
const SessionHeader = "X-Session-ID"

// SessionAuth resolves the visitor session and puts the user onto the gin
// context. There is no authentication in this system; the session ID is an
// opaque handle, not a credential.
func SessionAuth(repo users.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(SessionHeader)
		if header == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "X-Session-ID header is required", nil, nil)
			c.Abort()
			return
		}

		sessionID, err := uuid.Parse(header)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid session ID", nil, nil)
			c.Abort()
			return
		}

		user, err := repo.GetBySessionID(sessionID)
		if err != nil {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "unknown or expired session", nil, nil)
			c.Abort()
			return
		}

		c.Set("user_id", user.ID.String())
		c.Set("is_member", user.IsMember)

		c.Next()
	}
}
