package get_booking_report

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// UseCase - отчёт по бронированиям за период
type UseCase struct {
	bookings BookingRepository
	logger   Logger
}

func NewUseCase(bookings BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookings: bookings,
		logger:   logger,
	}
}

// Execute строит отчёт: срезы по дням, залам, статусам и клиентам
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация периода
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Активные бронирования по дате мероприятия
	active, err := uc.bookings.GetRange(ctx, domain.BookingsFilter{
		HallID:    req.HallID,
		StartDate: &req.From,
		EndDate:   &req.To,
	})
	if err != nil {
		uc.logger.Error("GetBookingReport: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch bookings: %v", ErrInternal, err)
	}

	// 3. Отменённые по дате отмены: когда отказались, а не на когда бронировали
	cancelled, err := uc.bookings.GetCancelledBetween(ctx, req.From, req.To, req.HallID)
	if err != nil {
		uc.logger.Error("GetBookingReport: failed to fetch cancelled bookings: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch cancelled bookings: %v", ErrInternal, err)
	}

	// 4. Агрегация
	totals, byDay, byHall, byStatus, byCustomer := aggregate(active)

	cancelledBucket := CancelledBucket{Count: len(cancelled)}
	for _, b := range cancelled {
		cancelledBucket.TotalAmount += b.TotalAmount
	}

	return &Response{
		From:       req.From.Format(domain.DateFormat),
		To:         req.To.Format(domain.DateFormat),
		HallID:     req.HallID,
		Totals:     totals,
		ByDay:      byDay,
		ByHall:     byHall,
		ByStatus:   byStatus,
		ByCustomer: byCustomer,
		Cancelled:  cancelledBucket,
	}, nil
}
