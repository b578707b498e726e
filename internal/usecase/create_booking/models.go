package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ExperienceService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ExperienceID    int64             // ID впечатления
	CustomerName    string            // Имя клиента
	CustomerEmail   string            // Email клиента
	Date            time.Time         // Дата бронирования (без времени)
	StartTime       types.TimeString  // Время начала слота (например, "09:00")
	EndTime         *types.TimeString // Время окончания (опционально, иначе вычисляется из длительности)
	NumberOfPeople  int               // Количество человек
	PromoCode       *string           // Промокод (опционально)
	SpecialRequests *string           // Пожелания клиента (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID      int64   // ID созданного бронирования
	TotalPrice     float64 // Итоговая цена (после скидки)
	DiscountAmount float64 // Размер скидки
	FinalPrice     float64 // Дублирует TotalPrice - итог к оплате

	ExperienceID   int64
	BookingDate    time.Time
	StartTime      types.TimeString
	EndTime        types.TimeString
	NumberOfPeople int
	Status         string
	PaymentStatus  string
	PromoCode      *string

	CreatedAt time.Time
}

// PromoInvalidError ошибка невалидного промокода с сообщением для клиента
// Обёртывает ErrInvalidPromo, чтобы handler мог отдать причину в ответе
type PromoInvalidError struct {
	Message string
}

func (e *PromoInvalidError) Error() string {
	return "create_booking: invalid promo code: " + e.Message
}

// Unwrap позволяет errors.Is(err, ErrInvalidPromo)
func (e *PromoInvalidError) Unwrap() error {
	return ErrInvalidPromo
}
