package domain

import "strings"

// NormalizeStatus приводит бэкендовый статус к каноническому виду
// Поглощает исторические варианты написания ("canceled", "advanced")
// Возвращает false, если строка не является известным статусом
func NormalizeStatus(raw string) (BookingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, true
	case "advance", "advanced":
		return StatusAdvance, true
	case "paid":
		return StatusPaid, true
	case "settled":
		return StatusSettled, true
	case "cancelled", "canceled":
		return StatusCancelled, true
	default:
		return "", false
	}
}

// DeriveStatus выводит стабильный статус оплаты из бэкендового статуса и сумм
// Чистая функция: одинаковые входы всегда дают одинаковый результат
//
// Явный бэкендовый статус (после нормализации написания) возвращается как есть.
// Иначе статус выводится из сумм:
//   - paid <= 0                -> pending
//   - 0 < paid < total        -> advance
//   - paid >= total > 0       -> paid
//   - остальное (total <= 0)  -> settled
func DeriveStatus(raw string, paidTotal, totalAmount float64) BookingStatus {
	if status, ok := NormalizeStatus(raw); ok {
		return status
	}

	switch {
	case paidTotal <= 0:
		return StatusPending
	case paidTotal < totalAmount:
		return StatusAdvance
	case totalAmount > 0:
		return StatusPaid
	default:
		return StatusSettled
	}
}
