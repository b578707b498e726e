package check_slot

import (
	"fmt"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ExperienceID <= 0 {
		return fmt.Errorf("%w: experienceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}

	return nil
}
