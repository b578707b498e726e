package get_availability

import (
	"github.com/m04kA/SMC-ExperienceService/internal/domain"
	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// calculateAvailableSpots вычисляет свободные места для каждого слота сетки
// Свободно = вместимость - сумма людей в активных бронированиях с точно
// таким же временем начала. Отрицательный остаток прижимается к нулю.
func calculateAvailableSpots(capacity int, bookings []*domain.Booking) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(domain.DailySlots))

	for i, slotStart := range domain.DailySlots {
		booked := sumPeopleAtSlot(slotStart, bookings)

		available := capacity - booked
		if available < 0 {
			available = 0
		}

		result[i] = domain.AvailableSlot{
			StartTime:      slotStart,
			AvailableSpots: available,
			TotalSpots:     capacity,
		}
	}

	return result
}

// sumPeopleAtSlot суммирует людей в активных бронированиях слота
// Считается только точное совпадение времени начала - пересечения интервалов
// сетка с фиксированными слотами не учитывает
func sumPeopleAtSlot(slotStart types.TimeString, bookings []*domain.Booking) int {
	total := 0
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if booking.StartTime == slotStart {
			total += booking.NumberOfPeople
		}
	}
	return total
}
