package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api/metrics"
	"github.com/rpgbuilder/character-builder/internal/api/middleware"
	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

const (
	sessionTTL       = 24 * time.Hour
	invalidUserAlert = "Invalid User"
)

type AuthHandler struct {
	pageBuilder
	authService  ports.AuthService
	metrics      *metrics.Metrics
	cookieSecure bool
	now          func() time.Time
}

func NewAuthHandler(authService ports.AuthService, m *metrics.Metrics, cookieSecure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		pageBuilder:  pageBuilder{auth: authService, log: log},
		authService:  authService,
		metrics:      m,
		cookieSecure: cookieSecure,
		now:          time.Now,
	}
}

type signinPage struct {
	Form      signinForm
	Errors    FieldErrors
	ReturnURL string
}

// ShowSignIn handles GET /signin.
func (h *AuthHandler) ShowSignIn(c echo.Context) error {
	return h.render(c, http.StatusOK, "", signinForm{}, nil)
}

// SignInAlias handles GET /sign-in by redirecting to the canonical path
// with the query string intact.
func (h *AuthHandler) SignInAlias(c echo.Context) error {
	target := middleware.SignInPath
	if q := c.Request().URL.RawQuery; q != "" {
		target += "?" + q
	}
	return c.Redirect(http.StatusMovedPermanently, target)
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var form signinForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if err := c.Validate(&form); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			return err
		}
		h.metrics.SignInAttemptsTotal.WithLabelValues("invalid").Inc()
		form.Password = ""
		return h.render(c, http.StatusUnprocessableEntity, "", form, fe)
	}

	cred, err := h.authService.SignIn(c.Request().Context(), middleware.WorkspaceID(c), form.Email, form.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		h.metrics.SignInAttemptsTotal.WithLabelValues("rejected").Inc()
		form.Password = ""
		return h.render(c, http.StatusUnauthorized, invalidUserAlert, form, nil)
	}
	if err != nil {
		return err
	}

	h.metrics.SignInAttemptsTotal.WithLabelValues("success").Inc()
	c.SetCookie(&http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    cred.Email,
		Path:     "/",
		Expires:  h.now().Add(sessionTTL),
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, safeReturnURL(c.QueryParam("returnUrl")))
}

// SignOut handles POST /signout: the session cookie is deleted and the auth
// flag cleared.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.authService.SignOut(c.Request().Context(), middleware.WorkspaceID(c)); err != nil {
		return err
	}
	c.SetCookie(&http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusSeeOther, middleware.SignInPath)
}

func (h *AuthHandler) render(c echo.Context, status int, alert string, form signinForm, fe FieldErrors) error {
	returnURL := c.QueryParam("returnUrl")
	if returnURL != "" {
		returnURL = safeReturnURL(returnURL)
	}
	pg := h.page(c, "Sign In", signinPage{
		Form:      form,
		Errors:    fe,
		ReturnURL: returnURL,
	})
	pg.Path = middleware.SignInPath
	pg.Alert = alert
	return c.Render(status, "signin", pg)
}

// safeReturnURL accepts only same-site absolute paths; anything else,
// including protocol-relative URLs, becomes "/".
func safeReturnURL(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return raw
}
