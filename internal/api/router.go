package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/api/handler"
	"github.com/rpgbuilder/character-builder/internal/api/metrics"
	"github.com/rpgbuilder/character-builder/internal/api/middleware"
	"github.com/rpgbuilder/character-builder/internal/api/view"
	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
	"github.com/rpgbuilder/character-builder/internal/core/service"
)

// Dependencies is everything NewRouter needs from main.
type Dependencies struct {
	Store        ports.WorkspaceStore
	StoreName    string
	Logger       zerolog.Logger
	Registry     *prometheus.Registry
	Credentials  []domain.Credential
	CookieSecure bool
	WorkspaceTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) (*echo.Echo, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	log := deps.Logger

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "rpg_builder",
		Registerer: deps.Registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Dependencies ---
	m := metrics.New(deps.Registry)
	authService := service.NewAuthService(deps.Store, deps.Credentials, log)
	characterService := service.NewCharacterService(deps.Store, log)
	guildService := service.NewGuildService(deps.Store, log)
	rosterService := service.NewRosterService()

	guildService.OnChange(func(workspaceID string, guilds []domain.Guild) {
		m.GuildListSize.Observe(float64(len(guilds)))
	})
	characterService.OnChange(func(workspaceID string, characters []domain.Character) {
		log.Debug().Str("workspace_id", workspaceID).Int("characters", len(characters)).Msg("character list updated")
	})

	pagesHandler := handler.NewPagesHandler(rosterService, authService, log)
	characterHandler := handler.NewCharacterHandler(characterService, authService, m, log)
	guildHandler := handler.NewGuildHandler(guildService, authService, m, log)
	authHandler := handler.NewAuthHandler(authService, m, deps.CookieSecure, log)

	// --- Probes and metrics (no workspace cookie) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(deps.Store, deps.StoreName).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Registry}))

	// --- Pages ---
	site := e.Group("", middleware.Workspace(deps.CookieSecure, deps.WorkspaceTTL))
	site.GET("/", pagesHandler.Home)
	site.GET("/players", pagesHandler.Players)

	site.GET("/signin", authHandler.ShowSignIn)
	site.POST("/signin", authHandler.SignIn)
	site.GET("/sign-in", authHandler.SignInAlias)
	site.POST("/signout", authHandler.SignOut)

	// Guarded per route: an empty-prefix group would also catch unknown paths.
	guard := middleware.RequireSession(m)
	site.GET("/character-faction", pagesHandler.CharacterFaction, guard)
	site.GET("/create-character", characterHandler.Show, guard)
	site.POST("/create-character", characterHandler.Create, guard)
	site.GET("/create-guild", guildHandler.Show, guard)
	site.POST("/create-guild", guildHandler.Create, guard)
	site.POST("/create-guild/remove", guildHandler.Remove, guard)
	site.POST("/create-guild/clear", guildHandler.Clear, guard)

	return e, nil
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
