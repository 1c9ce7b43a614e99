package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rpgbuilder/character-builder/internal/api/metrics"
	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// SignInPath is where unauthenticated visitors are sent.
const SignInPath = "/signin"

// SessionEmail returns the session cookie's value, or "" when absent.
func SessionEmail(c echo.Context) string {
	ck, err := c.Cookie(domain.SessionCookieName)
	if err != nil {
		return ""
	}
	return ck.Value
}

// RequireSession lets the request through when the session cookie is
// present. Otherwise it redirects to the sign-in page with the requested URI
// in returnUrl. m may be nil.
//
// The post-sign-in redirect is always a GET, so form actions such as
// POST /create-guild/remove return to the page that owns them instead.
func RequireSession(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if SessionEmail(c) != "" {
				return next(c)
			}

			if m != nil {
				m.GuardRedirectsTotal.Inc()
			}
			target := SignInPath + "?" + url.Values{"returnUrl": {returnURI(c.Request())}}.Encode()
			return c.Redirect(http.StatusSeeOther, target)
		}
	}
}

// returnURI is the request URI for GET and HEAD, and the first path segment
// for every other method.
func returnURI(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.RequestURI
	}
	page, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	return "/" + page
}
