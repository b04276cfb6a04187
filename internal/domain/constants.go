package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerDay число минут в сутках, используется при развороте окон через полночь
const MinutesPerDay = 1440

// Business validation constants
const (
	MaxNotesLength          = 500
	MaxSelectionDatesPerReq = 62 // не больше двух месяцев за одну композицию
)

// ActiveStatuses статусы, при которых бронирование занимает слоты
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAdvance,
	StatusPaid,
	StatusSettled,
}

// PaymentStatuses порядок статусов оплат в отчётах
// Отчётные корзины всегда содержат все четыре статуса, даже нулевые
var PaymentStatuses = []BookingStatus{
	StatusPending,
	StatusAdvance,
	StatusPaid,
	StatusSettled,
}
