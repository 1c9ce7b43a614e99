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

// CharacterHandler serves the create-character form and list.
type CharacterHandler struct {
	pageBuilder
	service ports.CharacterService
	metrics *metrics.Metrics
}

func NewCharacterHandler(service ports.CharacterService, auth ports.AuthService, m *metrics.Metrics, log zerolog.Logger) *CharacterHandler {
	return &CharacterHandler{
		pageBuilder: pageBuilder{auth: auth, log: log},
		service:     service,
		metrics:     m,
	}
}

type characterPage struct {
	Form       characterForm
	Errors     FieldErrors
	Characters []domain.Character
	Genders    []domain.Gender
	Classes    []domain.CharClass
}

// Show handles GET /create-character.
func (h *CharacterHandler) Show(c echo.Context) error {
	list, err := h.service.List(c.Request().Context(), middleware.WorkspaceID(c))
	if err != nil {
		return err
	}
	return h.render(c, http.StatusOK, characterForm{}, nil, list)
}

// Create handles POST /create-character. Invalid input re-renders the form
// with its values and per-field messages; a valid submission appends the
// character and renders an empty form.
func (h *CharacterHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	wsID := middleware.WorkspaceID(c)

	var form characterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	if err := c.Validate(&form); err != nil {
		var fe FieldErrors
		if !errors.As(err, &fe) {
			return err
		}
		list, lerr := h.service.List(ctx, wsID)
		if lerr != nil {
			return lerr
		}
		return h.render(c, http.StatusUnprocessableEntity, form, fe, list)
	}

	created, list, err := h.service.Create(ctx, wsID, ports.CreateCharacterInput{
		Name:      form.Name,
		Gender:    form.Gender,
		CharClass: form.CharClass,
	})
	if err != nil {
		if fe := characterFieldError(err); fe != nil {
			current, lerr := h.service.List(ctx, wsID)
			if lerr != nil {
				return lerr
			}
			return h.render(c, http.StatusUnprocessableEntity, form, fe, current)
		}
		return err
	}

	h.metrics.CharactersCreatedTotal.WithLabelValues(string(created.CharClass)).Inc()
	return h.render(c, http.StatusOK, characterForm{}, nil, list)
}

func (h *CharacterHandler) render(c echo.Context, status int, form characterForm, fe FieldErrors, list []domain.Character) error {
	return c.Render(status, "create_character", h.page(c, "Create Character", characterPage{
		Form:       form,
		Errors:     fe,
		Characters: list,
		Genders:    domain.Genders,
		Classes:    domain.Classes,
	}))
}

// characterFieldError maps service validation errors back onto form fields.
func characterFieldError(err error) FieldErrors {
	switch {
	case errors.Is(err, domain.ErrBlankName):
		return FieldErrors{"name": "Name is required."}
	case errors.Is(err, domain.ErrInvalidGender):
		return FieldErrors{"gender": "Gender is required."}
	case errors.Is(err, domain.ErrInvalidClass):
		return FieldErrors{"charClass": "Class is required."}
	}
	return nil
}
