package validate_promo

import (
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "некорректная сумма заказа"
)

type Handler struct {
	service PromoService
	logger  Logger
}

func NewHandler(service PromoService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/promo/validate
// Невалидный промокод - это 200 с valid=false, а не ошибка запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidatePromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /promo/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Amount < 0 {
		h.logger.Warn("POST /promo/validate - Negative amount: %f", req.Amount)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	result, err := h.service.Evaluate(r.Context(), req.Code, req.Amount)
	if err != nil {
		h.logger.Error("POST /promo/validate - Failed to evaluate promo: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := FromEvaluation(result)

	h.logger.Info("POST /promo/validate - Promo evaluated: code=%s, valid=%t", req.Code, result.Valid)
	handlers.RespondJSON(w, http.StatusOK, response)
}
