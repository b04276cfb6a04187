package availability

import "github.com/m04kA/SMC-VenueBookingService/internal/domain"

// Фиксированные периоды дня для залов без каталога слотов
// Ночной период переходит через полночь и требует wrap-сравнения окна
const (
	LegacyMorningID   int64 = 1
	LegacyAfternoonID int64 = 2
	LegacyEveningID   int64 = 3
	LegacyNightID     int64 = 4
)

// LegacyPeriods возвращает четыре именованных периода дня
// Используется только когда каталог слотов пуст; семантика пересечения и
// перехода через полночь та же, что у обычных слотов
func LegacyPeriods() []domain.Slot {
	return []domain.Slot{
		{ID: LegacyMorningID, Name: "morning", StartTime: "06:00", EndTime: "12:00"},
		{ID: LegacyAfternoonID, Name: "afternoon", StartTime: "12:00", EndTime: "17:00"},
		{ID: LegacyEveningID, Name: "evening", StartTime: "17:00", EndTime: "22:00"},
		{ID: LegacyNightID, Name: "night", StartTime: "22:00", EndTime: "06:00"},
	}
}
