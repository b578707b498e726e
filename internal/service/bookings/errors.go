package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrAlreadyCancelled возвращается при повторной попытке отменить бронирование
	ErrAlreadyCancelled = errors.New("bookings: booking is already cancelled")

	// ErrTooLateToCancel возвращается, когда до начала осталось меньше 24 часов
	ErrTooLateToCancel = errors.New("bookings: too late to cancel booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
