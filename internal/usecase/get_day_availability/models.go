package get_day_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// Request - запрос доступности зала на дату
// Staged - промежуточный выбор текущей сессии бронирования (опционально):
// выбранные слоты помечаются занятыми с признаком staged
type Request struct {
	HallID int64
	Date   time.Time
	Staged []domain.StagedSelection
}

// Response - картина дня по слотам
type Response struct {
	HallID         int64      `json:"hallId"`
	Date           string     `json:"date"`
	Status         string     `json:"status"`
	AvailableCount int        `json:"availableCount"`
	TotalCount     int        `json:"totalCount"`
	Slots          []SlotView `json:"slots"`
}

// SlotView - слот с признаком занятости
type SlotView struct {
	SlotID    int64         `json:"slotId"`
	Name      string        `json:"name"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	IsFree    bool          `json:"isFree"`
	IsStaged  bool          `json:"isStaged,omitempty"`
	Blocking  *BlockingView `json:"blocking,omitempty"`
}

// BlockingView - бронь, занимающая слот
type BlockingView struct {
	BookingID     int64  `json:"bookingId"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}
