package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/position"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"
)

type PreferencesHandler struct {
	uc usecase.PreferencesUsecase
}

func NewPreferencesHandler(uc usecase.PreferencesUsecase) *PreferencesHandler {
	return &PreferencesHandler{uc: uc}
}

func (h *PreferencesHandler) HandleSave(c fiber.Ctx) error {
	positionID, err := positionIDFromParams(c)
	if err != nil {
		return err
	}

	var req dto.PreferencesRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	prefs, err := h.uc.Save(c.Context(), principalFromCtx(c), positionID, usecase.PreferencesInput{
		JobCategory:             req.JobCategory,
		JobCategoryPriority:     req.JobCategoryPriority,
		EducationLevel:          req.EducationLevel,
		EducationLevelPriority:  req.EducationLevelPriority,
		MinYearsExperience:      req.MinYearsExperience,
		YearsExperiencePriority: req.YearsExperiencePriority,
		WorkSetting:             req.WorkSetting,
		WorkSettingPriority:     req.WorkSettingPriority,
		TravelRequirements:      req.TravelRequirements,
		TravelPriority:          req.TravelPriority,
		PreferredSalary:         req.PreferredSalary,
		SalaryPriority:          req.SalaryPriority,
	})
	if err != nil {
		return mapPreferencesError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toPreferencesResponse(prefs))
}

func (h *PreferencesHandler) HandleGet(c fiber.Ctx) error {
	positionID, err := positionIDFromParams(c)
	if err != nil {
		return err
	}

	prefs, err := h.uc.Get(c.Context(), principalFromCtx(c), positionID)
	if err != nil {
		return mapPreferencesError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toPreferencesResponse(prefs))
}

func positionIDFromParams(c fiber.Ctx) (int64, error) {
	raw := c.Params("position_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid position id", nil, err)
	}
	return id, nil
}

func toPreferencesResponse(p position.Preferences) dto.PreferencesResponse {
	return dto.PreferencesResponse{
		PositionID:              p.PositionID,
		JobCategory:             p.JobCategory,
		JobCategoryPriority:     string(p.JobCategoryPriority),
		EducationLevel:          p.EducationLevel,
		EducationLevelPriority:  string(p.EducationLevelPriority),
		MinYearsExperience:      p.MinYearsExperience,
		YearsExperiencePriority: string(p.YearsExperiencePriority),
		WorkSetting:             p.WorkSetting,
		WorkSettingPriority:     string(p.WorkSettingPriority),
		TravelRequirements:      p.TravelRequirements,
		TravelPriority:          string(p.TravelPriority),
		PreferredSalary:         p.PreferredSalary,
		SalaryPriority:          string(p.SalaryPriority),
	}
}

func mapPreferencesError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrPositionNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Position not found", nil, err)
	case errors.Is(err, usecase.ErrPreferencesNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Preferences not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
