package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api/metrics"
	"github.com/rpgbuilder/character-builder/internal/api/middleware"
	"github.com/rpgbuilder/character-builder/internal/api/view"
	"github.com/rpgbuilder/character-builder/internal/core/service"
	"github.com/rpgbuilder/character-builder/internal/infrastructure/db/memory"
)

const testWorkspace = "ws-test"

var nopLog = zerolog.Nop()

type fixture struct {
	e          *echo.Echo
	store      *memory.WorkspaceStore
	metrics    *metrics.Metrics
	auth       *service.AuthService
	characters *service.CharacterService
	guilds     *service.GuildService
}

func newFixture() *fixture {
	e := echo.New()
	e.Renderer = view.MustNewRenderer()
	e.Validator = NewValidator()

	store := memory.NewWorkspaceStore(time.Hour)
	return &fixture{
		e:          e,
		store:      store,
		metrics:    metrics.New(prometheus.NewRegistry()),
		auth:       service.NewAuthService(store, nil, nopLog),
		characters: service.NewCharacterService(store, nopLog),
		guilds:     service.NewGuildService(store, nopLog),
	}
}

// request builds a context for target with form as an urlencoded body
// (nil form sends no body) and the test workspace already resolved.
func (f *fixture) request(method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := f.e.NewContext(req, rec)
	c.Set(middleware.WorkspaceIDKey, testWorkspace)
	return c, rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
