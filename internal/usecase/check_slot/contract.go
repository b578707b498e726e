package check_slot

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
