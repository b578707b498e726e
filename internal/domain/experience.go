package domain

import "time"

// Experience впечатление (экскурсия, мастер-класс и т.п.), доступное для бронирования
type Experience struct {
	ID              int64
	Title           string
	Description     string
	Location        string
	Price           float64 // Цена за одного человека
	DurationMinutes int
	Capacity        int // Максимальное число людей в одном слоте
	ImageURL        *string
	IsActive        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalPriceFor возвращает стоимость бронирования для numberOfPeople человек (до скидки)
func (e *Experience) TotalPriceFor(numberOfPeople int) float64 {
	return e.Price * float64(numberOfPeople)
}
