package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request - заявка на бронирование: один или несколько дней,
// каждый день - либо список слотов, либо весь день целиком
type Request struct {
	HallID        int64           `json:"hallId"`
	CustomerID    int64           `json:"customerId"`
	EventTypeID   *int64          `json:"eventTypeId,omitempty"`
	Dates         []DateSelection `json:"dates"`
	TotalAmount   float64         `json:"totalAmount"`
	AdvanceAmount float64         `json:"advanceAmount"`
	Notes         *string         `json:"notes,omitempty"`
}

// DateSelection выбор на один день
// SlotIDs игнорируется при IsFullDay=true, кроме единственного слота:
// "весь день + конкретный слот" исторически означает занятость только этого слота
type DateSelection struct {
	Date      string  `json:"date"`
	SlotIDs   []int64 `json:"slotIds,omitempty"`
	IsFullDay bool    `json:"isFullDay"`
}

// Response - созданное бронирование
type Response struct {
	ID          int64          `json:"id"`
	HallID      int64          `json:"hallId"`
	CustomerID  int64          `json:"customerId"`
	EventTypeID *int64         `json:"eventTypeId,omitempty"`
	EventDate   string         `json:"eventDate"`
	Dates       []DateResponse `json:"dates"`
	TotalAmount float64        `json:"totalAmount"`
	PaidTotal   float64        `json:"paidTotal"`
	Status      string         `json:"status"`
	Notes       *string        `json:"notes,omitempty"`
	CreatedAt   string         `json:"createdAt"`
}

// DateResponse один день созданного бронирования
type DateResponse struct {
	Date      string `json:"date"`
	SlotID    *int64 `json:"slotId,omitempty"`
	IsFullDay bool   `json:"isFullDay"`
}

// FromDomainBooking собирает ответ из доменной модели
func FromDomainBooking(b *domain.Booking) *Response {
	dates := make([]DateResponse, 0, len(b.Rows))
	for _, row := range b.Rows {
		dates = append(dates, DateResponse{
			Date:      row.Date.Format(domain.DateFormat),
			SlotID:    row.SlotID,
			IsFullDay: row.IsFullDay,
		})
	}
	if len(dates) == 0 {
		dates = append(dates, DateResponse{
			Date:      b.EventDate.Format(domain.DateFormat),
			SlotID:    b.SlotID,
			IsFullDay: b.IsFullDay,
		})
	}

	return &Response{
		ID:          b.ID,
		HallID:      b.HallID,
		CustomerID:  b.CustomerID,
		EventTypeID: b.EventTypeID,
		EventDate:   b.EventDate.Format(domain.DateFormat),
		Dates:       dates,
		TotalAmount: b.TotalAmount,
		PaidTotal:   b.PaidTotal,
		Status:      string(domain.DeriveStatus(string(b.Status), b.PaidTotal, b.TotalAmount)),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
	}
}
