package domain

import "time"

// DiscountType тип скидки промокода
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode промокод на скидку
// Код хранится в верхнем регистре, уникален без учёта регистра
type PromoCode struct {
	ID             int64
	Code           string
	Description    string
	DiscountType   DiscountType
	DiscountValue  float64
	MinOrderAmount *float64
	MaxDiscount    *float64 // Ограничение скидки, применяется только для percentage
	StartDate      time.Time
	EndDate        *time.Time
	MaxUses        *int
	UseCount       int
	IsActive       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCurrentlyValid проверяет действительность промокода на момент now:
// активен, период действия начался и не закончился, лимит использований не исчерпан
func (p *PromoCode) IsCurrentlyValid(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if now.Before(p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	if p.MaxUses != nil && p.UseCount >= *p.MaxUses {
		return false
	}
	return true
}
