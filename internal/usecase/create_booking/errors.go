package create_booking

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("create_booking: experience not found")

	// ErrExperienceInactive возвращается, когда впечатление недоступно для бронирования
	ErrExperienceInactive = errors.New("create_booking: experience is not active")

	// ErrInvalidPromo возвращается, когда промокод не прошёл проверку
	ErrInvalidPromo = errors.New("create_booking: invalid promo code")

	// ErrSlotNotAvailable возвращается, когда в слоте не хватает мест
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
