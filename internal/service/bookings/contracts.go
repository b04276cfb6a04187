package bookings

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetPayments(ctx context.Context, bookingID int64) ([]domain.Payment, error)
	GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetByCustomer(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
	Settle(ctx context.Context, id int64) error
	AddPayment(ctx context.Context, payment *domain.Payment, paidTotal float64, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
