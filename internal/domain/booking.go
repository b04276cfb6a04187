package domain

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// BookingStatus статус оплаты бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAdvance   BookingStatus = "advance"
	StatusPaid      BookingStatus = "paid"
	StatusSettled   BookingStatus = "settled"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking бронирование зала
// Может занимать несколько дат/слотов через Rows (календарные под-строки)
// Никогда не удаляется физически: отмена - переход статуса
type Booking struct {
	ID          int64
	HallID      int64
	CustomerID  int64
	EventTypeID *int64

	// Основная дата и слот; для легаси-бронирований слот может отсутствовать,
	// тогда занятость восстанавливается по StartTime или трактуется как весь день
	EventDate time.Time
	SlotID    *int64
	StartTime *types.TimeString
	EndTime   *types.TimeString
	IsFullDay bool

	// Календарные под-строки многодатного бронирования
	Rows []BookingDate

	TotalAmount float64
	PaidTotal   float64
	Status      BookingStatus

	// Денормализованные данные клиента для отображения "кто занял слот"
	CustomerName  string
	CustomerPhone string

	Notes       *string
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingDate одна дата/слот многодатного бронирования
type BookingDate struct {
	ID        int64
	BookingID int64
	Date      time.Time
	SlotID    *int64
	IsFullDay bool
}

// IsActive возвращает true, если бронирование занимает слоты (не отменено)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled возвращает true, если бронирование отменено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsSettled возвращает true, если расчёт по бронированию закрыт
func (b *Booking) IsSettled() bool {
	return b.Status == StatusSettled
}

// CanBeCancelled возвращает true для нетерминальных статусов
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusAdvance || b.Status == StatusPaid
}

// CanBeSettled возвращает true, если по бронированию можно закрыть расчёт
// Закрытие имеет смысл только после хотя бы частичной оплаты
func (b *Booking) CanBeSettled() bool {
	return b.Status == StatusAdvance || b.Status == StatusPaid
}

// PendingTotal остаток к оплате: max(total - paid, 0)
func (b *Booking) PendingTotal() float64 {
	pending := b.TotalAmount - b.PaidTotal
	if pending < 0 {
		return 0
	}
	return pending
}

// ClampPaid ограничивает оплаченную сумму общей (инвариант paid <= total)
func (b *Booking) ClampPaid() {
	if b.PaidTotal > b.TotalAmount {
		b.PaidTotal = b.TotalAmount
	}
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	HallID           *int64         // nil - все залы
	StartDate        *time.Time     // начало периода (опционально)
	EndDate          *time.Time     // конец периода (опционально)
	Status           *BookingStatus // конкретный статус (опционально)
	IncludeCancelled bool           // включать ли отменённые
}
