package check_slot

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	checkSlot "github.com/m04kA/SMC-ExperienceService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// CheckSlotResponse HTTP response model
type CheckSlotResponse struct {
	Available      bool `json:"available"`
	AvailableSpots int  `json:"availableSpots"`
}

// ToUseCaseRequest собирает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(experienceID int64, dateStr, timeStr string, numberOfPeople int) (*checkSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	return &checkSlot.Request{
		ExperienceID:   experienceID,
		Date:           date,
		StartTime:      startTime,
		NumberOfPeople: numberOfPeople,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkSlot.Response) *CheckSlotResponse {
	return &CheckSlotResponse{
		Available:      resp.Available,
		AvailableSpots: resp.AvailableSpots,
	}
}
