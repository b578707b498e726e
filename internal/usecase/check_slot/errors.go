package check_slot

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("check_slot: experience not found")

	// ErrInvalidTimeSlot возвращается, когда время начала не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("check_slot: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_slot: internal error")
)
