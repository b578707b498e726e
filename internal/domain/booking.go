package domain

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus статус оплаты бронирования
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

// Booking бронирование впечатления на конкретный слот
type Booking struct {
	ID             int64
	ExperienceID   int64
	CustomerName   string
	CustomerEmail  string
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	NumberOfPeople int

	// Итоговая цена после применения скидки
	TotalPrice     float64
	PromoCode      *string
	DiscountAmount float64

	SpecialRequests *string

	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если бронирование занимает места в слоте
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// StartDateTime возвращает дату и время начала бронирования одним значением
func (b *Booking) StartDateTime() (time.Time, error) {
	return b.StartTime.ToTime(b.BookingDate)
}

// BookingFilter фильтр для выборки бронирований
type BookingFilter struct {
	ExperienceID     *int64            // Фильтр по впечатлению (опционально)
	StartDate        *time.Time        // Начало периода (опционально)
	EndDate          *time.Time        // Конец периода (опционально)
	StartTime        *types.TimeString // Фильтр по точному времени слота (опционально)
	Status           *BookingStatus    // Фильтр по статусу (опционально)
	IncludeCancelled bool              // Включать ли отменённые бронирования
}
