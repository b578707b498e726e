package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ExperienceService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ExperienceID int64          `json:"experienceId"`
	Title        string         `json:"title"`
	Date         string         `json:"date"`
	Capacity     int            `json:"capacity"`
	Slots        []SlotResponse `json:"slots"`
}

// SlotResponse слот сетки с количеством свободных мест
type SlotResponse struct {
	Time      string `json:"time"` // "09:00"
	Available int    `json:"available"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(experienceID int64, dateStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		ExperienceID: experienceID,
		Date:         date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Time:      slot.StartTime.String(),
			Available: slot.AvailableSpots,
		}
	}

	return &AvailabilityResponse{
		ExperienceID: resp.ExperienceID,
		Title:        resp.Title,
		Date:         resp.Date.Format(domain.DateFormat),
		Capacity:     resp.Capacity,
		Slots:        slots,
	}
}
