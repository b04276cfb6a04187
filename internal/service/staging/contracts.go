package staging

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingRepository - чтение броней для снимка занятости сессии
type BookingRepository interface {
	GetRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// MasterDataClient - каталог слотов
type MasterDataClient interface {
	GetSlots(ctx context.Context) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
