package check_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	checkSlot "github.com/m04kA/SMC-ExperienceService/internal/usecase/check_slot"
)

const (
	msgInvalidExperienceID = "некорректный ID впечатления"
	msgMissingDate         = "дата обязательна"
	msgMissingStartTime    = "время начала обязательно"
	msgInvalidDateOrTime   = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgInvalidPeople       = "некорректное количество человек"
	msgInvalidTimeSlot     = "время начала не входит в сетку слотов"
	msgExperienceNotFound  = "впечатление не найдено"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{experienceId}/availability/slot
// Query params: date (required, YYYY-MM-DD), startTime (required, HH:MM), numberOfPeople (default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	experienceIDStr := vars["experienceId"]
	experienceID, err := strconv.ParseInt(experienceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /experiences/{id}/availability/slot - Invalid experience ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExperienceID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /experiences/{id}/availability/slot - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := query.Get("startTime")
	if timeStr == "" {
		h.logger.Warn("GET /experiences/{id}/availability/slot - Missing start time")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}

	numberOfPeople := 1
	if peopleStr := query.Get("numberOfPeople"); peopleStr != "" {
		numberOfPeople, err = strconv.Atoi(peopleStr)
		if err != nil {
			h.logger.Warn("GET /experiences/{id}/availability/slot - Invalid number of people: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeople)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(experienceID, dateStr, timeStr, numberOfPeople)
	if err != nil {
		h.logger.Warn("GET /experiences/{id}/availability/slot - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id}/availability/slot - Experience not found: experience_id=%d", experienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, checkSlot.ErrInvalidTimeSlot):
			h.logger.Warn("GET /experiences/{id}/availability/slot - Invalid time slot: experience_id=%d, time=%s",
				experienceID, timeStr)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /experiences/{id}/availability/slot - Invalid input: experience_id=%d, error=%v",
				experienceID, err)
			handlers.RespondBadRequest(w, msgInvalidPeople)

		default:
			h.logger.Error("GET /experiences/{id}/availability/slot - Failed to check slot: experience_id=%d, error=%v",
				experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /experiences/{id}/availability/slot - Slot checked: experience_id=%d, date=%s, time=%s, available=%t",
		experienceID, dateStr, timeStr, result.Available)
	handlers.RespondJSON(w, http.StatusOK, response)
}
