package get_booking_report

import "time"

// Request - параметры отчёта за период, опционально по одному залу
type Request struct {
	From   time.Time
	To     time.Time
	HallID *int64
}

// Response - отчёт по бронированиям за период
// Финансовые срезы считаются только по активным бронированиям;
// отменённые вынесены в отдельный блок по дате отмены
type Response struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	HallID     *int64           `json:"hallId,omitempty"`
	Totals     Totals           `json:"totals"`
	ByDay      []DayBucket      `json:"byDay"`
	ByHall     []HallBucket     `json:"byHall"`
	ByStatus   []StatusBucket   `json:"byStatus"`
	ByCustomer []CustomerBucket `json:"byCustomer"`
	Cancelled  CancelledBucket  `json:"cancelled"`
}

// Totals сводные суммы по активным бронированиям периода
type Totals struct {
	Count        int     `json:"count"`
	TotalAmount  float64 `json:"totalAmount"`
	PaidTotal    float64 `json:"paidTotal"`
	PendingTotal float64 `json:"pendingTotal"`
}

// DayBucket срез по дате мероприятия
type DayBucket struct {
	Date string `json:"date"`
	Totals
}

// HallBucket срез по залу
type HallBucket struct {
	HallID int64 `json:"hallId"`
	Totals
}

// StatusBucket срез по платёжному статусу
// Все четыре статуса присутствуют всегда, в том числе с нулями
type StatusBucket struct {
	Status string `json:"status"`
	Totals
}

// CustomerBucket срез по клиенту
type CustomerBucket struct {
	CustomerID    int64  `json:"customerId"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
	Totals
}

// CancelledBucket отменённые бронирования с датой отмены внутри периода
type CancelledBucket struct {
	Count       int     `json:"count"`
	TotalAmount float64 `json:"totalAmount"`
}
