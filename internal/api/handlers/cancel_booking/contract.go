package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64) (*models.BookingResponse, error)
	Cancel(ctx context.Context, bookingID int64) error
}

// CacheInvalidator сбрасывает кэш месячных проекций после отмены
type CacheInvalidator interface {
	Invalidate(ctx context.Context, scope string, year, month int, hallID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
