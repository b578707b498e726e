package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
)

// UseCase use case для получения доступности слотов на дату
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

// Execute выполняет use case получения доступности
// Чтение без блокировок: результат - снимок на момент запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: experience=%d, date=%s",
		req.ExperienceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем впечатление
	exp, err := uc.experienceRepo.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			uc.logger.Warn("GetAvailability: experience id=%d not found", req.ExperienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get experience id=%d: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	// 3. Получаем все неотменённые бронирования на эту дату
	filter := domain.BookingFilter{
		ExperienceID:     ptr.Ptr(req.ExperienceID),
		StartDate:        &req.Date,
		EndDate:          &req.Date,
		IncludeCancelled: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем свободные места по сетке слотов
	slots := calculateAvailableSpots(exp.Capacity, bookings)

	uc.logger.Info("GetAvailability: experience=%d, date=%s, %d slots calculated",
		req.ExperienceID, req.Date.Format(domain.DateFormat), len(slots))

	return &Response{
		ExperienceID: exp.ID,
		Title:        exp.Title,
		Date:         req.Date,
		Capacity:     exp.Capacity,
		Slots:        slots,
	}, nil
}
