package get_booking_report

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository - выборка бронирований для отчёта
// Отменённые выбираются отдельно по оси даты отмены
type BookingRepository interface {
	GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetCancelledBetween(ctx context.Context, from, to time.Time, hallID *int64) ([]*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
