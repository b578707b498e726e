package models

// Evaluation результат применения промокода к сумме заказа
// Невалидный промокод - это обычный результат с Valid=false, а не ошибка
type Evaluation struct {
	Valid          bool
	Message        string  // Причина отказа (заполняется только при Valid=false)
	Code           *string // Нормализованный код (nil, если код не передавался)
	DiscountAmount float64 // Размер скидки
	FinalPrice     float64 // Итоговая сумма после скидки
}
