package domain

import "time"

// Payment запись об оплате по бронированию
// Читается как часть детализации бронирования
type Payment struct {
	ID        int64
	BookingID int64
	Amount    float64
	Method    *string
	PaidAt    time.Time
}
