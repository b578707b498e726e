package promos

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	promoRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/promo"
	"github.com/m04kA/SMC-ExperienceService/internal/service/promos/models"
)

// Сообщения для клиента (отдаются в теле ответа как есть)
const (
	msgInvalidOrExpired = "Invalid or expired promo code"
	msgMinOrderAmount   = "Minimum order amount of %s required"
)

// Service сервис применения промокодов
// Чистая проверка: счётчик использований промокода здесь не изменяется
type Service struct {
	promoRepo    PromoRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(promoRepo PromoRepository, logger Logger) *Service {
	return &Service{
		promoRepo:    promoRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Evaluate применяет промокод к сумме заказа amount
// Пустой код - валидный результат без скидки.
// Расчёт ведётся в float64 без промежуточных округлений: до двух знаков
// значение приводится только колонкой numeric(10,2) при сохранении.
func (s *Service) Evaluate(ctx context.Context, code string, amount float64) (*models.Evaluation, error) {
	if strings.TrimSpace(code) == "" {
		return &models.Evaluation{
			Valid:      true,
			FinalPrice: amount,
		}, nil
	}

	normalized := strings.ToUpper(strings.TrimSpace(code))

	promo, err := s.promoRepo.GetByCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, promoRepo.ErrPromoNotFound) {
			s.logger.Info("Evaluate: promo code %s not found", normalized)
			return invalid(msgInvalidOrExpired, amount), nil
		}
		s.logger.Error("Evaluate: failed to get promo code %s: %v", normalized, err)
		return nil, fmt.Errorf("%w: Evaluate - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	if !promo.IsCurrentlyValid(now) {
		s.logger.Info("Evaluate: promo code %s is not currently valid", normalized)
		return invalid(msgInvalidOrExpired, amount), nil
	}

	if promo.MinOrderAmount != nil && amount < *promo.MinOrderAmount {
		s.logger.Info("Evaluate: order amount %.2f below minimum %.2f for promo %s",
			amount, *promo.MinOrderAmount, normalized)
		return invalid(fmt.Sprintf(msgMinOrderAmount, formatAmount(*promo.MinOrderAmount)), amount), nil
	}

	discount := calculateDiscount(promo, amount)

	s.logger.Info("Evaluate: promo %s applied, amount=%.2f, discount=%.4f", normalized, amount, discount)

	return &models.Evaluation{
		Valid:          true,
		Code:           &promo.Code,
		DiscountAmount: discount,
		FinalPrice:     amount - discount,
	}, nil
}

// calculateDiscount вычисляет размер скидки по типу промокода
// percentage: amount * value / 100, не больше MaxDiscount (если задан)
// fixed: value, но не больше самой суммы
func calculateDiscount(promo *domain.PromoCode, amount float64) float64 {
	switch promo.DiscountType {
	case domain.DiscountPercentage:
		discount := amount * promo.DiscountValue / 100
		if promo.MaxDiscount != nil && discount > *promo.MaxDiscount {
			discount = *promo.MaxDiscount
		}
		return discount
	case domain.DiscountFixed:
		if promo.DiscountValue > amount {
			return amount
		}
		return promo.DiscountValue
	default:
		return 0
	}
}

func invalid(message string, amount float64) *models.Evaluation {
	return &models.Evaluation{
		Valid:      false,
		Message:    message,
		FinalPrice: amount,
	}
}

// formatAmount форматирует сумму без хвостовых нулей: 100 -> "100", 99.5 -> "99.5"
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
