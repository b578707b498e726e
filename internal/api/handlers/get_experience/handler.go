package get_experience

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	"github.com/m04kA/SMC-ExperienceService/internal/service/experiences"
)

const (
	msgInvalidExperienceID = "некорректный ID впечатления"
	msgNotFound            = "впечатление не найдено"
)

type Handler struct {
	service ExperienceService
	logger  Logger
}

func NewHandler(service ExperienceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/experiences/{experienceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	experienceIDStr := vars["experienceId"]

	experienceID, err := strconv.ParseInt(experienceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /experiences/{id} - Invalid experience ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExperienceID)
		return
	}

	experience, err := h.service.GetByID(r.Context(), experienceID)
	if err != nil {
		switch {
		case errors.Is(err, experiences.ErrExperienceNotFound):
			h.logger.Warn("GET /experiences/{id} - Experience not found: experience_id=%d", experienceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /experiences/{id} - Failed to get experience: experience_id=%d, error=%v",
				experienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /experiences/{id} - Experience retrieved: experience_id=%d", experienceID)
	handlers.RespondJSON(w, http.StatusOK, experience)
}
