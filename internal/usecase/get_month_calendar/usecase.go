package get_month_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/infra/cache/monthcache"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/calendarservice"
	"github.com/m04kA/SMC-VenueBookingService/pkg/coalesce"
)

// UseCase - месячная сетка занятости зала
// Данные берутся из read-проекции календаря через кэш; одновременные запросы
// одного и того же месяца схлопываются в один обращение к проекции
type UseCase struct {
	calendar   CalendarClient
	cache      MonthCache
	masterData MasterDataClient
	group      *coalesce.Group
	logger     Logger
}

func NewUseCase(calendar CalendarClient, cache MonthCache, masterData MasterDataClient, logger Logger) *UseCase {
	return &UseCase{
		calendar:   calendar,
		cache:      cache,
		masterData: masterData,
		group:      coalesce.NewGroup(),
		logger:     logger,
	}
}

// Execute возвращает сводку доступности каждого дня месяца
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	// 2. Каталог слотов для расчёта сводок
	slots, err := uc.masterData.GetSlots(ctx)
	if err != nil {
		uc.logger.Error("GetMonthCalendar: failed to fetch slots: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch slots: %v", ErrInternal, err)
	}
	if len(slots) == 0 {
		slots = availability.LegacyPeriods()
	}

	// 3. Строки месяца: кэш, затем проекция; конкурентные запросы схлопываются
	rows, err := uc.fetchMonthRows(ctx, req)
	if err != nil {
		return nil, err
	}

	// 4. Сводка по каждому дню месяца
	occupancies := rowsToOccupancies(rows)
	days := make([]DayCell, 0, 31)
	first := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == time.Month(req.Month); d = d.AddDate(0, 0, 1) {
		date := d.Format(domain.DateFormat)
		summary := availability.SummarizeDay(req.HallID, date, slots, occupancies, nil)
		days = append(days, DayCell{
			Date:           date,
			Status:         string(summary.Status),
			AvailableCount: summary.AvailableCount,
			TotalCount:     summary.TotalCount,
		})
	}

	return &Response{
		HallID: req.HallID,
		Year:   req.Year,
		Month:  req.Month,
		Days:   days,
	}, nil
}

// fetchMonthRows читает строки месяца из кэша или проекции
func (uc *UseCase) fetchMonthRows(ctx context.Context, req Request) ([]calendarservice.MonthRow, error) {
	key := fmt.Sprintf("%s:%04d-%02d:hall:%d", req.Scope, req.Year, req.Month, req.HallID)

	result, err, joined := uc.group.FetchOrJoin(key, func() (interface{}, error) {
		if uc.cache != nil {
			cached, err := uc.cache.Get(ctx, req.Scope, req.Year, req.Month, req.HallID)
			if err == nil {
				return cached, nil
			}
			if !errors.Is(err, monthcache.ErrCacheMiss) {
				uc.logger.Warn("GetMonthCalendar: cache read failed for %s: %v", key, err)
			}
		}

		rows, err := uc.calendar.GetMonth(ctx, req.Scope, req.Year, req.Month, req.HallID)
		if err != nil {
			return nil, err
		}

		if uc.cache != nil {
			if err := uc.cache.Set(ctx, req.Scope, req.Year, req.Month, req.HallID, rows); err != nil {
				uc.logger.Warn("GetMonthCalendar: cache write failed for %s: %v", key, err)
			}
		}
		return rows, nil
	})
	if err != nil {
		uc.logger.Error("GetMonthCalendar: failed to fetch month %s: %v", key, err)
		return nil, fmt.Errorf("%w: Execute - fetch month rows: %v", ErrInternal, err)
	}
	if joined {
		uc.logger.Info("GetMonthCalendar: joined in-flight fetch for %s", key)
	}

	return result.([]calendarservice.MonthRow), nil
}

// rowsToOccupancies переводит строки проекции в факты занятости
func rowsToOccupancies(rows []calendarservice.MonthRow) []domain.Occupancy {
	occupancies := make([]domain.Occupancy, 0, len(rows))
	for _, row := range rows {
		occupancies = append(occupancies, domain.Occupancy{
			HallID:    row.HallID,
			Date:      row.Date,
			SlotID:    row.SlotID,
			BookingID: row.BookingID,
		})
	}
	return occupancies
}
