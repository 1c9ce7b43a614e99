package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// WorkspaceIDKey is the echo context key holding the visitor's workspace id.
const WorkspaceIDKey = "workspace_id"

// Workspace makes sure every request carries a workspace cookie and exposes
// its id under WorkspaceIDKey. Unknown or malformed ids are replaced.
func Workspace(secure bool, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if ck, err := c.Cookie(domain.WorkspaceCookieName); err == nil {
				if parsed, err := uuid.Parse(ck.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
			}
			// Refresh on every request so the cookie tracks the store's sliding expiry.
			c.SetCookie(&http.Cookie{
				Name:     domain.WorkspaceCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(WorkspaceIDKey, id)
			return next(c)
		}
	}
}

// WorkspaceID returns the id stored by Workspace, or "" when it did not run.
func WorkspaceID(c echo.Context) string {
	id, _ := c.Get(WorkspaceIDKey).(string)
	return id
}
