package record_payment

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method *string `json:"method,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RecordPaymentRequest) ToServiceRequest() *models.RecordPaymentRequest {
	return &models.RecordPaymentRequest{
		Amount: r.Amount,
		Method: r.Method,
	}
}
