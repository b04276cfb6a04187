package domain

// StagedSelection несохранённый выбор слотов, накапливаемый в рамках сессии
// композиции бронирования; очищается при отправке или отказе от композиции
type StagedSelection struct {
	Date      string // YYYY-MM-DD
	HallID    int64
	SlotIDs   []int64
	IsFullDay bool
}

// Claims проверяет, занимает ли выбор указанный слот на (зал, дату)
func (s StagedSelection) Claims(hallID int64, date string, slotID int64) bool {
	if s.HallID != hallID || s.Date != date {
		return false
	}
	if s.IsFullDay {
		return true
	}
	for _, id := range s.SlotIDs {
		if id == slotID {
			return true
		}
	}
	return false
}
