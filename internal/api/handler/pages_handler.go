package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

// PagesHandler serves the static pages: home, players, character factions.
type PagesHandler struct {
	pageBuilder
	roster ports.Roster
}

func NewPagesHandler(roster ports.Roster, auth ports.AuthService, log zerolog.Logger) *PagesHandler {
	return &PagesHandler{pageBuilder: pageBuilder{auth: auth, log: log}, roster: roster}
}

// Home handles GET /.
func (h *PagesHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", h.page(c, "", nil))
}

// Players handles GET /players.
func (h *PagesHandler) Players(c echo.Context) error {
	return c.Render(http.StatusOK, "players", h.page(c, "Players", h.roster.Players()))
}

// CharacterFaction handles GET /character-faction.
func (h *PagesHandler) CharacterFaction(c echo.Context) error {
	return c.Render(http.StatusOK, "character_faction", h.page(c, "Character Factions", h.roster.Factions()))
}
