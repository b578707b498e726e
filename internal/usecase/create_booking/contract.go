package create_booking

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	promoModels "github.com/m04kA/SMC-ExperienceService/internal/service/promos/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// ExperienceRepository интерфейс репозитория впечатлений
type ExperienceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Experience, error)
}

// PromoEvaluator интерфейс сервиса применения промокодов
type PromoEvaluator interface {
	Evaluate(ctx context.Context, code string, amount float64) (*promoModels.Evaluation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
