package sessions

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/service/staging"
	"github.com/m04kA/SMC-VenueBookingService/internal/session"
	uc "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

// CreateSessionRequest HTTP request model
// Период задаёт диапазон снимка занятости для сессии
type CreateSessionRequest struct {
	HallID int64  `json:"hallId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID     string `json:"sessionId"`
	SnapshotState string `json:"snapshotState"`
}

// RefreshSnapshotRequest HTTP request model
type RefreshSnapshotRequest struct {
	HallID int64  `json:"hallId"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// AddSelectionRequest HTTP request model
type AddSelectionRequest struct {
	HallID    int64   `json:"hallId"`
	Date      string  `json:"date"`
	SlotIDs   []int64 `json:"slotIds,omitempty"`
	IsFullDay bool    `json:"isFullDay"`
}

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	HallID int64  `json:"hallId"`
	Date   string `json:"date"`
	SlotID int64  `json:"slotId"`
}

// ToggleFullDayRequest HTTP request model
type ToggleFullDayRequest struct {
	HallID int64  `json:"hallId"`
	Date   string `json:"date"`
	Enable bool   `json:"enable"`
}

// SelectionsResponse HTTP response model
type SelectionsResponse struct {
	Selections []staging.SelectionView `json:"selections"`
}

// FinalizeRequest HTTP request model
// Содержимое композиции берётся из сессии, здесь только реквизиты брони
type FinalizeRequest struct {
	CustomerID    int64   `json:"customerId"`
	EventTypeID   *int64  `json:"eventTypeId,omitempty"`
	TotalAmount   float64 `json:"totalAmount"`
	AdvanceAmount float64 `json:"advanceAmount"`
	Notes         *string `json:"notes,omitempty"`
}

// toCreateRequest собирает запрос создания брони из композиции и реквизитов
func (r *FinalizeRequest) toCreateRequest(sub *session.Submission) uc.Request {
	dates := make([]uc.DateSelection, 0, len(sub.Dates))
	for _, d := range sub.Dates {
		dates = append(dates, uc.DateSelection{
			Date:      d.Date,
			SlotIDs:   d.SlotIDs,
			IsFullDay: d.IsFullDay,
		})
	}

	return uc.Request{
		HallID:        sub.HallID,
		CustomerID:    r.CustomerID,
		EventTypeID:   r.EventTypeID,
		Dates:         dates,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
		Notes:         r.Notes,
	}
}
