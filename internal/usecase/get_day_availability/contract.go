package get_day_availability

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository - доступ к броням зала
type BookingRepository interface {
	GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MasterDataClient - клиент справочника залов и слотов
type MasterDataClient interface {
	GetHalls(ctx context.Context) ([]domain.Hall, error)
	GetSlots(ctx context.Context) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
