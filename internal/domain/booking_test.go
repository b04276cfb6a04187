package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		status        BookingStatus
		canBeCanceled bool
		canBeSettled  bool
	}{
		{status: StatusPending, canBeCanceled: true, canBeSettled: false},
		{status: StatusAdvance, canBeCanceled: true, canBeSettled: true},
		{status: StatusPaid, canBeCanceled: true, canBeSettled: true},
		{status: StatusSettled, canBeCanceled: false, canBeSettled: false},
		{status: StatusCancelled, canBeCanceled: false, canBeSettled: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := Booking{Status: tt.status}
			assert.Equal(t, tt.canBeCanceled, b.CanBeCancelled())
			assert.Equal(t, tt.canBeSettled, b.CanBeSettled())
		})
	}
}

func TestPendingTotal(t *testing.T) {
	assert.Equal(t, 60.0, (&Booking{TotalAmount: 100, PaidTotal: 40}).PendingTotal())
	assert.Equal(t, 0.0, (&Booking{TotalAmount: 100, PaidTotal: 100}).PendingTotal())
	// Переплата не даёт отрицательного остатка
	assert.Equal(t, 0.0, (&Booking{TotalAmount: 100, PaidTotal: 150}).PendingTotal())
}

func TestClampPaid(t *testing.T) {
	b := Booking{TotalAmount: 100, PaidTotal: 150}
	b.ClampPaid()
	assert.Equal(t, 100.0, b.PaidTotal)

	b = Booking{TotalAmount: 100, PaidTotal: 70}
	b.ClampPaid()
	assert.Equal(t, 70.0, b.PaidTotal)
}
