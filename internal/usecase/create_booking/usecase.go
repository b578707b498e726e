package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	"github.com/m04kA/SMC-ExperienceService/pkg/ptr"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo    BookingRepository
	experienceRepo ExperienceRepository
	promoEvaluator PromoEvaluator
	txManager      TransactionManager
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	experienceRepo ExperienceRepository,
	promoEvaluator PromoEvaluator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		experienceRepo: experienceRepo,
		promoEvaluator: promoEvaluator,
		txManager:      txManager,
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка вместимости и вставка выполняются в одной транзакции REPEATABLE READ
// с блокировкой строк слота (FOR UPDATE) - либо записывается всё, либо ничего
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: experience=%d, date=%s, time=%s, people=%d",
		req.ExperienceID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время начала должно входить в сетку слотов
	if !domain.IsValidSlot(req.StartTime) {
		uc.logger.Warn("CreateBooking: start time %s is not in the slot grid", req.StartTime)
		return nil, ErrInvalidTimeSlot
	}

	// 3. Получаем впечатление
	exp, err := uc.experienceRepo.GetByID(ctx, req.ExperienceID)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			uc.logger.Warn("CreateBooking: experience id=%d not found", req.ExperienceID)
			return nil, ErrExperienceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get experience id=%d: %v", req.ExperienceID, err)
		return nil, fmt.Errorf("%w: failed to get experience: %v", ErrInternal, err)
	}

	if !exp.IsActive {
		uc.logger.Warn("CreateBooking: experience id=%d is not active", req.ExperienceID)
		return nil, ErrExperienceInactive
	}

	// 4. Стоимость до скидки
	totalPrice := exp.TotalPriceFor(req.NumberOfPeople)

	// 5. Применяем промокод
	promoCode := ""
	if req.PromoCode != nil {
		promoCode = *req.PromoCode
	}

	evaluation, err := uc.promoEvaluator.Evaluate(ctx, promoCode, totalPrice)
	if err != nil {
		uc.logger.Error("CreateBooking: promo evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: failed to evaluate promo code: %v", ErrInternal, err)
	}

	if !evaluation.Valid {
		uc.logger.Warn("CreateBooking: promo code rejected: %s", evaluation.Message)
		return nil, &PromoInvalidError{Message: evaluation.Message}
	}

	// 6. Время окончания: переданное клиентом, иначе начало + длительность впечатления
	// Слот, пересекающий полночь, получает "завёрнутое" время окончания
	var endTime types.TimeString
	if req.EndTime != nil {
		endTime = *req.EndTime
	} else {
		endTime, err = req.StartTime.AddMinutes(exp.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute end time: %v", err)
			return nil, fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}
	}

	var result *domain.Booking

	// 7. Проверка вместимости и вставка в одной транзакции
	err = uc.txManager.DoRepeatableRead(ctx, func(txCtx context.Context) error {
		// 7.1. Перечитываем бронирования слота с блокировкой (FOR UPDATE)
		filter := domain.BookingFilter{
			ExperienceID:     ptr.Ptr(req.ExperienceID),
			StartDate:        &req.Date,
			EndDate:          &req.Date,
			StartTime:        &req.StartTime,
			IncludeCancelled: false,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем вместимость слота
		booked := sumBookedPeople(bookings)
		if booked+req.NumberOfPeople > exp.Capacity {
			uc.logger.Warn("CreateBooking: slot full, %d/%d spots taken, requested %d",
				booked, exp.Capacity, req.NumberOfPeople)
			return ErrSlotNotAvailable
		}

		uc.logger.Info("CreateBooking: slot has room, %d/%d spots taken, requested %d",
			booked, exp.Capacity, req.NumberOfPeople)

		// 7.3. Создаем бронирование с итоговой ценой после скидки
		booking := &domain.Booking{
			ExperienceID:    req.ExperienceID,
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			EndTime:         endTime,
			NumberOfPeople:  req.NumberOfPeople,
			TotalPrice:      evaluation.FinalPrice,
			PromoCode:       evaluation.Code,
			DiscountAmount:  evaluation.DiscountAmount,
			SpecialRequests: req.SpecialRequests,
			Status:          domain.StatusConfirmed,
			PaymentStatus:   domain.PaymentPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%.2f, discount=%.2f",
		result.ID, result.TotalPrice, result.DiscountAmount)

	return &Response{
		BookingID:      result.ID,
		TotalPrice:     result.TotalPrice,
		DiscountAmount: result.DiscountAmount,
		FinalPrice:     result.TotalPrice,
		ExperienceID:   result.ExperienceID,
		BookingDate:    result.BookingDate,
		StartTime:      result.StartTime,
		EndTime:        result.EndTime,
		NumberOfPeople: result.NumberOfPeople,
		Status:         string(result.Status),
		PaymentStatus:  string(result.PaymentStatus),
		PromoCode:      result.PromoCode,
		CreatedAt:      result.CreatedAt,
	}, nil
}
