package create_booking

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ExperienceID <= 0 {
		return fmt.Errorf("%w: experienceID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if !emailRegexp.MatchString(req.CustomerEmail) {
		return fmt.Errorf("%w: invalid customerEmail format", ErrInvalidInput)
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

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.NumberOfPeople < domain.MinNumberOfPeople {
		return fmt.Errorf("%w: numberOfPeople must be at least %d", ErrInvalidInput, domain.MinNumberOfPeople)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}

	return nil
}

// sumBookedPeople суммирует количество человек в активных бронированиях слота
func sumBookedPeople(bookings []*domain.Booking) int {
	total := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		total += booking.NumberOfPeople
	}
	return total
}
