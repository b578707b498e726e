package validate_promo

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/service/promos/models"
)

type PromoService interface {
	Evaluate(ctx context.Context, code string, amount float64) (*models.Evaluation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
