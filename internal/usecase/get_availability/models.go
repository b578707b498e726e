package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/internal/domain"
)

// Request модель запроса на получение доступности по сетке слотов
type Request struct {
	ExperienceID int64     // ID впечатления
	Date         time.Time // Дата (без времени)
}

// Response модель ответа с доступностью всех слотов сетки на дату
type Response struct {
	ExperienceID int64
	Title        string
	Date         time.Time
	Capacity     int
	Slots        []domain.AvailableSlot
}
