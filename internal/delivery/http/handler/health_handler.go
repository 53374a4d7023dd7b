package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/pkg/response"
)

// Pinger reports reachability of a backing service.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	checks := map[string]string{}

	status := fiber.StatusOK
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			checks["database"] = "down"
			status = fiber.StatusServiceUnavailable
		} else {
			checks["database"] = "up"
		}
	}
	if h.cache != nil {
		// cache is best-effort; a down cache does not fail the check
		if err := h.cache.Ping(c.Context()); err != nil {
			checks["cache"] = "down"
		} else {
			checks["cache"] = "up"
		}
	}

	return response.Success(c, status, response.DefaultMessageForStatus(status), checks)
}
