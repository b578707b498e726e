package experience

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ExperienceService/pkg/psqlbuilder"
)

var experienceColumns = []string{
	"id",
	"title",
	"description",
	"location",
	"price",
	"duration_minutes",
	"capacity",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с впечатлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория впечатлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает впечатление по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	exp, err := scanExperience(row)
	if err == sql.ErrNoRows {
		return nil, ErrExperienceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan experience: %v", ErrScanRow, err)
	}

	return exp, nil
}

// ListActive получает список активных впечатлений
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Experience, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(experienceColumns...).
		From("experiences").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	experiences := make([]*domain.Experience, 0)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		experiences = append(experiences, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return experiences, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExperience(row rowScanner) (*domain.Experience, error) {
	var exp domain.Experience
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&exp.ID,
		&exp.Title,
		&exp.Description,
		&exp.Location,
		&exp.Price,
		&exp.DurationMinutes,
		&exp.Capacity,
		&exp.ImageURL,
		&exp.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	exp.CreatedAt = createdAt.Time
	exp.UpdatedAt = updatedAt.Time

	return &exp, nil
}
