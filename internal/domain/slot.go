package domain

import "github.com/m04kA/SMC-ExperienceService/pkg/types"

// DailySlots фиксированная сетка слотов, одинаковая для всех впечатлений и дат
// Единственный источник списка слотов для расчёта доступности и бронирования
var DailySlots = []types.TimeString{
	"09:00",
	"11:00",
	"14:00",
	"16:00",
}

// IsValidSlot возвращает true, если время входит в сетку слотов
func IsValidSlot(t types.TimeString) bool {
	for _, slot := range DailySlots {
		if slot == t {
			return true
		}
	}
	return false
}

// AvailableSlot слот с количеством свободных мест
type AvailableSlot struct {
	StartTime      types.TimeString
	AvailableSpots int // Свободные места
	TotalSpots     int // Вместимость слота (capacity впечатления)
}

// IsFull возвращает true, если свободных мест нет
func (s *AvailableSlot) IsFull() bool {
	return s.AvailableSpots <= 0
}

// CanFit возвращает true, если в слот помещается numberOfPeople человек
func (s *AvailableSlot) CanFit(numberOfPeople int) bool {
	return numberOfPeople <= s.AvailableSpots
}
