package routes

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	v1 "talent-match/internal/delivery/http/routes/v1"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/ws"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	logger *zap.Logger
	wsh    *ws.Handler
}

func NewRegistry(cfg config.Config, db database.DB, c *cache.Redis, logger *zap.Logger, wsh *ws.Handler) *Registry {
	return &Registry{cfg: cfg, db: db, cache: c, logger: logger, wsh: wsh}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(r.logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(r.logger).Middleware())

	health := handler.NewHealthHandler(r.db, r.cache)
	app.Get("/health", health.HandleHealth)

	if r.wsh != nil {
		app.Get("/ws", r.wsh.HandleAttach)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.logger)
}
