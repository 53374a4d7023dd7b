package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"
)

type CandidateHandler struct {
	uc usecase.CandidateSearchUsecase
}

func NewCandidateHandler(uc usecase.CandidateSearchUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// HandleSearch serves the candidate listing. Without positionId it is a
// plain active-candidate list; with positionId the full matching pipeline
// runs for the owning employer.
func (h *CandidateHandler) HandleSearch(c fiber.Ctx) error {
	positionID, err := parseQueryInt64Strict(c, "positionId", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid positionId", nil, err)
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid limit", nil, err)
	}

	items, err := h.uc.Search(c.Context(), principalFromCtx(c), usecase.CandidateSearchParams{
		PositionID: positionID,
		Limit:      limit,
	})
	if err != nil {
		return mapCandidateSearchError(err)
	}

	out := make([]dto.CandidateResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.CandidateResponse{
			SeekerID:        it.SeekerID,
			FullName:        it.FullName,
			City:            it.City,
			State:           it.State,
			JobCategory:     it.JobCategory,
			Skills:          it.Skills,
			Languages:       it.Languages,
			Certifications:  it.Certifications,
			Interests:       it.Interests,
			WorkSetting:     it.WorkSetting,
			Travel:          it.Travel,
			PreferredSalary: it.PreferredSalary,
			CreatedAt:       it.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func principalFromCtx(c fiber.Ctx) usecase.Principal {
	accountID, _ := c.Locals(middleware.CtxAccountIDKey).(int64)
	role, _ := c.Locals(middleware.CtxRoleKey).(string)
	employerID, _ := c.Locals(middleware.CtxEmployerIDKey).(int64)
	return usecase.Principal{AccountID: accountID, Role: role, EmployerID: employerID}
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseQueryInt64Strict(c fiber.Ctx, key string, defaultVal int64) (int64, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapCandidateSearchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
