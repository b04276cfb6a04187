package get_day_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/availability"
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/masterdata"
)

// UseCase - получение доступности зала на дату
type UseCase struct {
	bookings   BookingRepository
	masterData MasterDataClient
	logger     Logger
}

func NewUseCase(bookings BookingRepository, masterData MasterDataClient, logger Logger) *UseCase {
	return &UseCase{
		bookings:   bookings,
		masterData: masterData,
		logger:     logger,
	}
}

// Execute возвращает статус каждого слота зала на дату и сводку дня
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	date := req.Date.Format(domain.DateFormat)

	// 2. Проверяем, что зал существует
	halls, err := uc.masterData.GetHalls(ctx)
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to fetch halls: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch halls: %v", ErrInternal, err)
	}
	if findHall(halls, req.HallID) == nil {
		return nil, fmt.Errorf("%w: hall id=%d", ErrHallNotFound, req.HallID)
	}

	// 3. Каталог слотов; пустой каталог переключает на легаси-периоды дня
	slots, err := uc.masterData.GetSlots(ctx)
	if err != nil {
		if errors.Is(err, masterdata.ErrInvalidResponse) {
			uc.logger.Warn("GetDayAvailability: slot catalog unavailable, falling back to legacy periods: %v", err)
			slots = availability.LegacyPeriods()
		} else {
			uc.logger.Error("GetDayAvailability: failed to fetch slots: %v", err)
			return nil, fmt.Errorf("%w: Execute - fetch slots: %v", ErrInternal, err)
		}
	}
	if len(slots) == 0 {
		slots = availability.LegacyPeriods()
	}

	// 4. Активные брони зала на дату
	bookings, err := uc.bookings.GetRange(ctx, domain.BookingsFilter{
		HallID:    &req.HallID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	})
	if err != nil {
		uc.logger.Error("GetDayAvailability: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: Execute - fetch bookings: %v", ErrInternal, err)
	}

	// 5. Нормализация броней в факты занятости и расчёт статусов
	occupancies := availability.Normalize(bookings, slots)
	statuses := availability.SlotsWithStatus(req.HallID, date, slots, occupancies, req.Staged)
	summary := availability.SummarizeDay(req.HallID, date, slots, occupancies, req.Staged)

	return buildResponse(req.HallID, date, summary, statuses), nil
}

func buildResponse(hallID int64, date string, summary availability.DaySummary, statuses []availability.SlotStatus) *Response {
	views := make([]SlotView, 0, len(statuses))
	for _, st := range statuses {
		view := SlotView{
			SlotID:    st.Slot.ID,
			Name:      st.Slot.Name,
			StartTime: st.Slot.StartTime.String(),
			EndTime:   st.Slot.EndTime.String(),
			IsFree:    st.IsFree,
			IsStaged:  st.IsStaged,
		}
		if st.Blocking != nil {
			view.Blocking = &BlockingView{
				BookingID:     st.Blocking.BookingID,
				CustomerName:  st.Blocking.CustomerName,
				CustomerPhone: st.Blocking.CustomerPhone,
			}
		}
		views = append(views, view)
	}

	return &Response{
		HallID:         hallID,
		Date:           date,
		Status:         string(summary.Status),
		AvailableCount: summary.AvailableCount,
		TotalCount:     summary.TotalCount,
		Slots:          views,
	}
}

func findHall(halls []domain.Hall, hallID int64) *domain.Hall {
	for i := range halls {
		if halls[i].ID == hallID {
			return &halls[i]
		}
	}
	return nil
}
