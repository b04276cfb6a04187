package staging

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
)

// SessionView ответ на создание/обновление сессии композиции
type SessionView struct {
	SessionID     string `json:"sessionId"`
	SnapshotState string `json:"snapshotState"`
}

// SelectionView текущее состояние выбора по одной дате
type SelectionView struct {
	Date      string  `json:"date"`
	HallID    int64   `json:"hallId"`
	SlotIDs   []int64 `json:"slotIds"`
	IsFullDay bool    `json:"isFullDay"`
	State     string  `json:"state"`
}

// SnapshotStateLabel текстовое представление состояния снимка занятости
func SnapshotStateLabel(state session.SnapshotState) string {
	switch state {
	case session.SnapshotLoading:
		return "loading"
	case session.SnapshotReady:
		return "ready"
	default:
		return "unknown"
	}
}

// StateLabel текстовое представление состояния выбора дня
func StateLabel(state session.SelectionState) string {
	switch state {
	case session.SelectionPartial:
		return "partial"
	case session.SelectionFull:
		return "full"
	default:
		return "none"
	}
}

// selectionViews собирает представление выборов с расчётом состояния каждой даты
func selectionViews(entries []domain.StagedSelection, stateOf func(date string, hallID int64) string) []SelectionView {
	views := make([]SelectionView, 0, len(entries))
	for _, e := range entries {
		views = append(views, SelectionView{
			Date:      e.Date,
			HallID:    e.HallID,
			SlotIDs:   e.SlotIDs,
			IsFullDay: e.IsFullDay,
			State:     stateOf(e.Date, e.HallID),
		})
	}
	return views
}
