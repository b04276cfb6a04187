package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// claimedSlotIDs возвращает слоты, которые заявка занимает в указанный день
// Особый случай: "весь день" с единственным явным слотом занимает только его
func claimedSlotIDs(sel DateSelection, slots []domain.Slot) []int64 {
	if sel.IsFullDay {
		if len(sel.SlotIDs) == 1 {
			return sel.SlotIDs
		}
		ids := make([]int64, 0, len(slots))
		for _, slot := range slots {
			ids = append(ids, slot.ID)
		}
		return ids
	}
	return sel.SlotIDs
}

// buildBooking собирает доменную модель из провалидированной заявки
// Однодневная заявка с одним слотом или целым днём хранится плоско,
// всё остальное раскладывается в календарные под-строки
func buildBooking(req Request, customer *domain.Customer, status domain.BookingStatus, paid float64) *domain.Booking {
	booking := &domain.Booking{
		HallID:        req.HallID,
		CustomerID:    req.CustomerID,
		EventTypeID:   req.EventTypeID,
		TotalAmount:   req.TotalAmount,
		PaidTotal:     paid,
		Status:        status,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		Notes:         req.Notes,
	}

	first, _ := time.Parse(domain.DateFormat, req.Dates[0].Date)
	booking.EventDate = first

	if len(req.Dates) == 1 && isFlatSelection(req.Dates[0]) {
		sel := req.Dates[0]
		booking.IsFullDay = sel.IsFullDay
		if len(sel.SlotIDs) == 1 {
			booking.SlotID = &sel.SlotIDs[0]
		}
		return booking
	}

	for _, sel := range req.Dates {
		date, _ := time.Parse(domain.DateFormat, sel.Date)
		if sel.IsFullDay && len(sel.SlotIDs) != 1 {
			booking.Rows = append(booking.Rows, domain.BookingDate{
				Date:      date,
				IsFullDay: true,
			})
			continue
		}
		if sel.IsFullDay {
			// Весь день с явным слотом: сохраняем оба признака
			slotID := sel.SlotIDs[0]
			booking.Rows = append(booking.Rows, domain.BookingDate{
				Date:      date,
				SlotID:    &slotID,
				IsFullDay: true,
			})
			continue
		}
		for i := range sel.SlotIDs {
			booking.Rows = append(booking.Rows, domain.BookingDate{
				Date:   date,
				SlotID: &sel.SlotIDs[i],
			})
		}
	}

	return booking
}

// isFlatSelection - выбор, представимый без под-строк:
// весь день либо ровно один слот
func isFlatSelection(sel DateSelection) bool {
	if sel.IsFullDay {
		return len(sel.SlotIDs) <= 1
	}
	return len(sel.SlotIDs) == 1
}

// dateBounds возвращает минимальную и максимальную даты заявки
func dateBounds(dates []DateSelection) (time.Time, time.Time) {
	var min, max time.Time
	for _, sel := range dates {
		d, _ := time.Parse(domain.DateFormat, sel.Date)
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}
	return min, max
}
