package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api/middleware"
	"github.com/rpgbuilder/character-builder/internal/api/view"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

// pageBuilder fills the layout fields every page shares: the active path
// and whether the navigation shows Sign In or Sign Out.
type pageBuilder struct {
	auth ports.AuthService
	log  zerolog.Logger
}

func (p pageBuilder) page(c echo.Context, title string, data any) view.Page {
	email := middleware.SessionEmail(c)
	signedIn, err := p.auth.IsAuthenticated(c.Request().Context(), middleware.WorkspaceID(c), email != "")
	if err != nil {
		// Navigation falls back to the signed-out view.
		p.log.Warn().Err(err).Msg("auth state lookup failed")
		signedIn = false
	}

	pg := view.Page{
		Title:    title,
		Path:     c.Path(),
		SignedIn: signedIn,
		Data:     data,
	}
	if signedIn {
		pg.UserEmail = email
	}
	return pg
}
