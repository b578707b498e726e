package list_experiences

import (
	"context"

	"github.com/m04kA/SMC-ExperienceService/internal/service/experiences/models"
)

type ExperienceService interface {
	List(ctx context.Context) (*models.ExperienceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
