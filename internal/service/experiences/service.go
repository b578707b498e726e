package experiences

import (
	"context"
	"errors"
	"fmt"

	experienceRepo "github.com/m04kA/SMC-ExperienceService/internal/infra/storage/experience"
	"github.com/m04kA/SMC-ExperienceService/internal/service/experiences/models"
)

// Service сервис для работы с каталогом впечатлений
type Service struct {
	experienceRepo ExperienceRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса впечатлений
func NewService(experienceRepo ExperienceRepository, logger Logger) *Service {
	return &Service{
		experienceRepo: experienceRepo,
		logger:         logger,
	}
}

// List получает список активных впечатлений
func (s *Service) List(ctx context.Context) (*models.ExperienceListResponse, error) {
	s.logger.Info("List: fetching active experiences")

	experiences, err := s.experienceRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d experiences", len(experiences))
	return models.FromDomainExperienceList(experiences), nil
}

// GetByID получает впечатление по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ExperienceResponse, error) {
	s.logger.Info("GetByID: fetching experience id=%d", id)

	exp, err := s.experienceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, experienceRepo.ErrExperienceNotFound) {
			s.logger.Warn("GetByID: experience id=%d not found", id)
			return nil, ErrExperienceNotFound
		}
		s.logger.Error("GetByID: repository error for experience id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainExperience(exp), nil
}
