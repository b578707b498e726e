package promo

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/psqlbuilder"
)

var promoColumns = []string{
	"id",
	"code",
	"description",
	"discount_type",
	"discount_value",
	"min_order_amount",
	"max_discount",
	"start_date",
	"end_date",
	"max_uses",
	"use_count",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод по коду
// Код нормализуется к верхнему регистру: промокоды нечувствительны к регистру
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promoColumns...).
		From("promo_codes").
		Where(squirrel.Eq{"code": strings.ToUpper(code)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	promo, err := scanPromo(row)
	if err == sql.ErrNoRows {
		return nil, ErrPromoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan promo: %v", ErrScanRow, err)
	}

	return promo, nil
}

// Create создает новый промокод (используется административным контуром и сидингом)
// Код сохраняется в верхнем регистре
func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promo_codes").
		Columns(
			"code",
			"description",
			"discount_type",
			"discount_value",
			"min_order_amount",
			"max_discount",
			"start_date",
			"end_date",
			"max_uses",
			"is_active",
		).
		Values(
			strings.ToUpper(promo.Code),
			promo.Description,
			promo.DiscountType,
			promo.DiscountValue,
			promo.MinOrderAmount,
			promo.MaxDiscount,
			promo.StartDate,
			promo.EndDate,
			promo.MaxUses,
			promo.IsActive,
		).
		Suffix("RETURNING id, use_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&promo.ID,
		&promo.UseCount,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.Code = strings.ToUpper(promo.Code)
	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// IncrementUseCount увеличивает счётчик использований промокода
// Путь бронирования этот метод не вызывает: списанием использований
// управляет административный контур
func (r *Repository) IncrementUseCount(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("use_count", squirrel.Expr("use_count + 1")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUseCount - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUseCount - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUseCount - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromoNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromo(row rowScanner) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Description,
		&promo.DiscountType,
		&promo.DiscountValue,
		&promo.MinOrderAmount,
		&promo.MaxDiscount,
		&promo.StartDate,
		&promo.EndDate,
		&promo.MaxUses,
		&promo.UseCount,
		&promo.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}
