package get_booking_report

import (
	"context"

	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/get_booking_report"
)

type GetBookingReportUseCase interface {
	Execute(ctx context.Context, req uc.Request) (*uc.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
