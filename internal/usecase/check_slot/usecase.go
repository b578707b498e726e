package check_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
)

// UseCase use case для справочной проверки одного слота
type UseCase struct {
	bookingRepo    BookingRepository
	experienceRepo ExperienceRepository
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	experienceRepo ExperienceRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		logger:         logger,
	}
}

// Execute выполняет use case проверки слота
// Чтение без блокировок: к моменту создания бронирования слот может быть занят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlot: experience=%d, date=%s, time=%s, people=%d",
		req.ExperienceID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Время начала должно входить в сетку слотов
	if !domain.IsValidSlot(req.StartTime) {
		uc.logger.Warn("CheckSlot: start time %s is not in the slot grid", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 3. Получаем впечатление
	exp, err := uc.experienceRepo.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			uc.logger.Warn("CheckSlot: experience id=%d not found", req.ExperienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("CheckSlot: failed to get experience id=%d: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	// 4. Получаем неотменённые бронирования этого слота
	filter := domain.BookingFilter{
		ExperienceID:     ptr.Ptr(req.ExperienceID),
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		StartTime:        &req.StartTime,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Считаем занятые места
	booked := 0
	for _, booking := range bookings {
		if booking.IsActive() {
			booked += booking.NumberOfPeople
		}
	}

	available := exp.Capacity - booked
	if available < 0 {
		available = 0
	}

	slot := domain.AvailableSlot{
		StartTime:      req.StartTime,
		AvailableSpots: available,
		TotalSpots:     exp.Capacity,
	}

	if slot.IsFull() {
		uc.logger.Warn("CheckSlot: experience=%d, slot=%s is fully booked", req.ExperienceID, req.StartTime)
	} else {
		uc.logger.Info("CheckSlot: experience=%d, slot=%s, %d/%d spots taken",
			req.ExperienceID, req.StartTime, booked, exp.Capacity)
	}

	return &Response{
		Available:      slot.CanFit(req.NumberOfPeople),
		AvailableSpots: slot.AvailableSpots,
	}, nil
}
