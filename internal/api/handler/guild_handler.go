package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api/metrics"
	"github.com/rpgbuilder/character-builder/internal/api/middleware"
	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

const guildPath = "/create-guild"

// GuildHandler serves the create-guild form and the guild card list.
type GuildHandler struct {
	pageBuilder
	service ports.GuildService
	metrics *metrics.Metrics
}

func NewGuildHandler(svc ports.GuildService, auth ports.AuthService, m *metrics.Metrics, log zerolog.Logger) *GuildHandler {
	return &GuildHandler{
		pageBuilder: pageBuilder{auth: auth, log: log},
		service:     svc,
		metrics:     m,
	}
}

type guildPage struct {
	Form                guildForm
	Errors              FieldErrors
	Guilds              []domain.Guild
	GuildTypes          []domain.GuildType
	NotificationOptions []domain.NotificationPreference
}

// Show handles GET /create-guild.
func (h *GuildHandler) Show(c echo.Context) error {
	list, err := h.service.List(c.Request().Context(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, "", guildForm{}, nil, list)
}

// Create handles POST /create-guild. On invalid input every failing field
// shows its message and nothing is stored.
func (h *GuildHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	wsID := middleware.WorkspaceID(c)

	var form guildForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if err := c.Validate(&form); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			return err
		}
		return h.renderInvalid(c, form, fe)
	}

	list, err := h.service.Create(ctx, wsID, ports.CreateGuildInput{
		GuildName:              form.GuildName,
		Description:            form.Description,
		Type:                   form.Type,
		NotificationPreference: form.NotificationPreference,
		AcceptTerms:            form.AcceptTerms,
	})
	if err != nil {
		if fe := guildFieldError(err); fe != nil {
			return h.renderInvalid(c, form, fe)
		}
		return err
	}

	h.metrics.GuildsCreatedTotal.WithLabelValues(form.Type).Inc()
	return h.render(c, http.StatusOK, "Guild created", guildForm{}, nil, list)
}

// Remove handles POST /create-guild/remove.
func (h *GuildHandler) Remove(c echo.Context) error {
	name := c.FormValue("guildName")
	_, removed, err := h.service.Remove(c.Request().Context(), middleware.WorkspaceID(c), name)
	if err != nil {
		return err
	}
	h.metrics.GuildsRemovedTotal.Add(float64(removed))
	return c.Redirect(http.StatusSeeOther, guildPath)
}

// Clear handles POST /create-guild/clear.
func (h *GuildHandler) Clear(c echo.Context) error {
	if err := h.service.Clear(c.Request().Context(), middleware.WorkspaceID(c)); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, guildPath)
}

func (h *GuildHandler) renderInvalid(c echo.Context, form guildForm, fe FieldErrors) error {
	list, err := h.service.List(c.Request().Context(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusUnprocessableEntity, "", form, fe, list)
}

func (h *GuildHandler) render(c echo.Context, status int, notice string, form guildForm, fe FieldErrors, list []domain.Guild) error {
	pg := h.page(c, "Create Guild", guildPage{
		Form:                form,
		Errors:              fe,
		Guilds:              list,
		GuildTypes:          domain.GuildTypes,
		NotificationOptions: domain.NotificationPreferences,
	})
	pg.Notice = notice
	return c.Render(status, "create_guild", pg)
}

func guildFieldError(err error) FieldErrors {
	switch {
	case errors.Is(err, domain.ErrGuildNameRequired):
		return FieldErrors{"guildName": "Guild name is required."}
	case errors.Is(err, domain.ErrGuildNameTooLong):
		return FieldErrors{"guildName": "Max 100 characters."}
	case errors.Is(err, domain.ErrDescriptionRequired):
		return FieldErrors{"description": "Description is required."}
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return FieldErrors{"description": "Max 1000 characters."}
	case errors.Is(err, domain.ErrInvalidGuildType):
		return FieldErrors{"type": "Type is required."}
	case errors.Is(err, domain.ErrInvalidNotification):
		return FieldErrors{"notificationPreference": "Notification preference is required."}
	case errors.Is(err, domain.ErrTermsNotAccepted):
		return FieldErrors{"acceptTerms": "You must accept the terms."}
	}
	return nil
}
