package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings service: booking not found")

	// ErrCannotCancel возвращается при попытке отменить бронирование в терминальном статусе
	ErrCannotCancel = errors.New("bookings service: booking cannot be cancelled")

	// ErrCannotSettle возвращается при попытке закрыть расчёт без оплат
	ErrCannotSettle = errors.New("bookings service: booking cannot be settled")

	// ErrCannotPay возвращается при попытке внести оплату по отменённому бронированию
	ErrCannotPay = errors.New("bookings service: booking cannot accept payments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings service: invalid input")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
