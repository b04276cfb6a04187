package get_month_calendar

import (
	"context"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/calendarservice"
)

// CalendarClient - read-проекция месячной занятости
type CalendarClient interface {
	GetMonth(ctx context.Context, scope string, year, month int, hallID int64) ([]calendarservice.MonthRow, error)
}

// MonthCache - кэш месячных проекций; nil-реализация допустима
type MonthCache interface {
	Get(ctx context.Context, scope string, year, month int, hallID int64) ([]calendarservice.MonthRow, error)
	Set(ctx context.Context, scope string, year, month int, hallID int64, rows []calendarservice.MonthRow) error
}

// MasterDataClient - каталог слотов для расчёта сводок дня
type MasterDataClient interface {
	GetSlots(ctx context.Context) ([]domain.Slot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
