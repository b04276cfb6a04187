package create_booking

import (
	"context"

	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req uc.Request) (*uc.Response, error)
}

// CacheInvalidator сбрасывает кэш месячных проекций после записи
type CacheInvalidator interface {
	Invalidate(ctx context.Context, scope string, year, month int, hallID int64)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
