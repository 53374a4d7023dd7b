package v1

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"talent-match/internal/config"
	"talent-match/internal/database"
	"talent-match/internal/delivery/http/handler"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/matching"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, c *cache.Redis, logger *zap.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	seekerRepo := repository.NewPostgresSeekerRepository(db)
	positionRepo := repository.NewPostgresPositionRepository(db)
	prefsRepo := repository.NewPostgresPreferencesRepository(db)
	embeddingRepo := repository.NewPostgresEmbeddingRepository(db)
	accountRepo := repository.NewPostgresAccountRepository(db)
	employerRepo := repository.NewPostgresEmployerRepository(db)

	authUC := usecase.NewAuthUsecase(accountRepo, seekerRepo, employerRepo, jwtSvc)
	searchUC := usecase.NewCandidateSearchUsecase(
		seekerRepo, positionRepo, prefsRepo, embeddingRepo,
		matching.DefaultTaxonomy(), matching.NewPostFilter(logger),
		c, logger,
	)
	prefsUC := usecase.NewPreferencesUsecase(positionRepo, prefsRepo, c, logger)

	authHandler := handler.NewAuthHandler(authUC)
	candidateHandler := handler.NewCandidateHandler(searchUC)
	prefsHandler := handler.NewPreferencesHandler(prefsUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	protected.Get("/candidates", candidateHandler.HandleSearch)

	positions := protected.Group("/positions", authMw.RequireEmployer())
	positions.Put("/:position_id/preferences", prefsHandler.HandleSave)
	positions.Get("/:position_id/preferences", prefsHandler.HandleGet)
}
