package check_slot

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// Request модель запроса на проверку конкретного слота
type Request struct {
	ExperienceID   int64            // ID впечатления
	Date           time.Time        // Дата (без времени)
	StartTime      types.TimeString // Время начала слота
	NumberOfPeople int              // Запрашиваемое количество человек
}

// Response модель ответа с результатом проверки
// Результат справочный: без блокировок, гарантию даёт только создание бронирования
type Response struct {
	Available      bool // Поместится ли запрошенное число людей
	AvailableSpots int  // Свободные места на момент проверки
}
