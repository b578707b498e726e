package list_experiences

import (
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
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

// Handle GET /api/v1/experiences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /experiences - Failed to list experiences: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /experiences - Experiences listed: count=%d", len(result.Experiences))
	handlers.RespondJSON(w, http.StatusOK, result)
}
