package availability

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Normalize приводит разнородные сырые бронирования к единому набору фактов
// занятости: по одному Occupancy на каждую (дату, слот), занятые бронированием.
//
// Правила сведения легаси-представлений:
//   - отменённые бронирования фактов не порождают;
//   - бронирование с календарными под-строками даёт факт на каждую строку
//     (дата/слот берутся из самой строки);
//   - иначе используется единственная основная дата бронирования;
//   - слот без id, но со временем начала разрешается через окна слотов;
//     если ни одно окно не содержит время начала - консервативный фолбэк
//     "весь день" (блокирует каждый слот зала на дату);
//   - бронирование "весь день" с явным слотом занимает только этот слот -
//     двойной смысл флага сохранён намеренно вслед за исходными данными.
//
// Функция детерминирована: одинаковый вход даёт одинаковый набор фактов.
func Normalize(bookings []*domain.Booking, slots []domain.Slot) []domain.Occupancy {
	occupancies := make([]domain.Occupancy, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		if len(booking.Rows) > 0 {
			// Многодатное бронирование: факт на каждую календарную строку
			for _, row := range booking.Rows {
				occupancies = append(occupancies, domain.Occupancy{
					HallID:        booking.HallID,
					Date:          row.Date.Format(domain.DateFormat),
					SlotID:        resolveSlotID(row.SlotID, row.IsFullDay, booking.StartTime, slots),
					BookingID:     booking.ID,
					CustomerName:  booking.CustomerName,
					CustomerPhone: booking.CustomerPhone,
				})
			}
			continue
		}

		occupancies = append(occupancies, domain.Occupancy{
			HallID:        booking.HallID,
			Date:          booking.EventDate.Format(domain.DateFormat),
			SlotID:        resolveSlotID(booking.SlotID, booking.IsFullDay, booking.StartTime, slots),
			BookingID:     booking.ID,
			CustomerName:  booking.CustomerName,
			CustomerPhone: booking.CustomerPhone,
		})
	}

	return occupancies
}

// resolveSlotID определяет, какой слот занимает запись бронирования
//
// Явный слот всегда выигрывает, в том числе у флага "весь день".
// Затем флаг "весь день", затем восстановление слота по времени начала.
// Запись без слота, времени и флага трактуется как занявшая весь день.
func resolveSlotID(slotID *int64, isFullDay bool, startTime *types.TimeString, slots []domain.Slot) int64 {
	if slotID != nil {
		return *slotID
	}

	if isFullDay {
		return domain.AllDaySlot
	}

	if startTime != nil {
		if id, ok := slotByStartTime(*startTime, slots); ok {
			return id
		}
	}

	return domain.AllDaySlot
}

// slotByStartTime находит слот, окно которого содержит указанное время начала
func slotByStartTime(startTime types.TimeString, slots []domain.Slot) (int64, bool) {
	minute, err := startTime.MinuteOfDay()
	if err != nil {
		return 0, false
	}

	for _, slot := range slots {
		window, err := slot.Window()
		if err != nil {
			continue
		}
		if window.Contains(minute) {
			return slot.ID, true
		}
	}

	return 0, false
}
