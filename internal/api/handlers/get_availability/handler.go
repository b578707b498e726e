package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_availability"
)

const (
	msgInvalidExperienceID = "некорректный ID впечатления"
	msgMissingDate         = "дата обязательна"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgExperienceNotFound  = "впечатление не найдено"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{experienceId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	experienceIDStr := vars["experienceId"]
	experienceID, err := strconv.ParseInt(experienceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /experiences/{id}/availability - Invalid experience ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExperienceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /experiences/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(experienceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /experiences/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id}/availability - Experience not found: experience_id=%d", experienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /experiences/{id}/availability - Invalid input: experience_id=%d, error=%v", experienceID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /experiences/{id}/availability - Failed to get availability: experience_id=%d, error=%v",
				experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /experiences/{id}/availability - Availability retrieved: experience_id=%d, date=%s, slots_count=%d",
		experienceID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
