package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ExperienceService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ExperienceService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты (YYYY-MM-DD) или времени (HH:MM)"
	msgExperienceNotFound = "впечатление не найдено"
	msgExperienceInactive = "впечатление недоступно для бронирования"
	msgSlotNotAvailable   = "недостаточно мест в выбранном слоте"
	msgInvalidTimeSlot    = "время начала не входит в сетку слотов"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: experience_id=%d, date=%s, time=%s",
				req.ExperienceID, req.BookingDate, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrExperienceNotFound):
			h.logger.Warn("POST /bookings - Experience not found: experience_id=%d", req.ExperienceID)
			handlers.RespondNotFound(w, msgExperienceNotFound)

		case errors.Is(err, createBooking.ErrExperienceInactive):
			h.logger.Warn("POST /bookings - Experience inactive: experience_id=%d", req.ExperienceID)
			handlers.RespondBadRequest(w, msgExperienceInactive)

		case errors.Is(err, createBooking.ErrInvalidPromo):
			h.logger.Warn("POST /bookings - Invalid promo code: experience_id=%d, error=%v", req.ExperienceID, err)
			// Отдаём клиенту причину отказа из проверки промокода
			var promoErr *createBooking.PromoInvalidError
			if errors.As(err, &promoErr) {
				handlers.RespondBadRequest(w, promoErr.Message)
			} else {
				handlers.RespondBadRequest(w, msgInvalidInput)
			}

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: experience_id=%d, time=%s", req.ExperienceID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: experience_id=%d, error=%v", req.ExperienceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: experience_id=%d, error=%v",
				req.ExperienceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, experience_id=%d",
		result.BookingID, req.ExperienceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
