package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// BookingDateResponse одна дата многодатного бронирования
type BookingDateResponse struct {
	Date      string `json:"date"`
	SlotID    *int64 `json:"slotId,omitempty"`
	IsFullDay bool   `json:"isFullDay,omitempty"`
}

// PaymentResponse запись об оплате
type PaymentResponse struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Method *string `json:"method,omitempty"`
	PaidAt string  `json:"paidAt"`
}

// BookingResponse модель бронирования для HTTP-слоя
type BookingResponse struct {
	ID            int64                 `json:"id"`
	HallID        int64                 `json:"hallId"`
	CustomerID    int64                 `json:"customerId"`
	CustomerName  string                `json:"customerName"`
	CustomerPhone string                `json:"customerPhone"`
	EventTypeID   *int64                `json:"eventTypeId,omitempty"`
	EventDate     string                `json:"eventDate"`
	SlotID        *int64                `json:"slotId,omitempty"`
	StartTime     *string               `json:"startTime,omitempty"`
	EndTime       *string               `json:"endTime,omitempty"`
	IsFullDay     bool                  `json:"isFullDay"`
	Dates         []BookingDateResponse `json:"dates,omitempty"`
	TotalAmount   float64               `json:"totalAmount"`
	PaidTotal     float64               `json:"paidTotal"`
	PendingTotal  float64               `json:"pendingTotal"`
	Status        string                `json:"status"`
	Notes         *string               `json:"notes,omitempty"`
	CancelledAt   *string               `json:"cancelledAt,omitempty"`
	Payments      []PaymentResponse     `json:"payments,omitempty"`
	CreatedAt     string                `json:"createdAt"`
	UpdatedAt     string                `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// RecordPaymentRequest запрос на внесение оплаты
type RecordPaymentRequest struct {
	Amount float64
	Method *string
}

// HallBookingsRequest запрос списка бронирований зала
type HallBookingsRequest struct {
	HallID           int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в domain-фильтр
func (r *HallBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		HallID:           &r.HallID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus валидирует и нормализует статус из строки
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status, ok := domain.NormalizeStatus(s)
	if !ok {
		return "", fmt.Errorf("unknown booking status: %q", s)
	}
	return status, nil
}

// FromDomainBooking конвертирует domain-бронирование в ответ
// Статус всегда пересчитывается через машину статусов: явный бэкендовый
// статус выигрывает, иначе выводится из сумм
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:            b.ID,
		HallID:        b.HallID,
		CustomerID:    b.CustomerID,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		EventTypeID:   b.EventTypeID,
		EventDate:     b.EventDate.Format(domain.DateFormat),
		SlotID:        b.SlotID,
		IsFullDay:     b.IsFullDay,
		TotalAmount:   b.TotalAmount,
		PaidTotal:     b.PaidTotal,
		PendingTotal:  b.PendingTotal(),
		Status:        string(domain.DeriveStatus(string(b.Status), b.PaidTotal, b.TotalAmount)),
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}

	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	if b.EndTime != nil {
		s := b.EndTime.String()
		resp.EndTime = &s
	}
	if b.CancelledAt != nil {
		s := b.CancelledAt.Format(domain.DateFormat)
		resp.CancelledAt = &s
	}

	for _, row := range b.Rows {
		resp.Dates = append(resp.Dates, BookingDateResponse{
			Date:      row.Date.Format(domain.DateFormat),
			SlotID:    row.SlotID,
			IsFullDay: row.IsFullDay,
		})
	}

	return resp
}

// FromDomainPayments конвертирует оплаты
func FromDomainPayments(payments []domain.Payment) []PaymentResponse {
	result := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentResponse{
			ID:     p.ID,
			Amount: p.Amount,
			Method: p.Method,
			PaidAt: p.PaidAt.Format(time.RFC3339),
		}
	}
	return result
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	list := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		list[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{Bookings: list, Total: len(list)}
}
