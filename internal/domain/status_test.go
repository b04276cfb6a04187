package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   BookingStatus
		wantOK bool
	}{
		{name: "canonical pending", raw: "pending", want: StatusPending, wantOK: true},
		{name: "canonical cancelled", raw: "cancelled", want: StatusCancelled, wantOK: true},
		{name: "american spelling", raw: "canceled", want: StatusCancelled, wantOK: true},
		{name: "legacy advanced", raw: "advanced", want: StatusAdvance, wantOK: true},
		{name: "uppercase", raw: "PAID", want: StatusPaid, wantOK: true},
		{name: "surrounding spaces", raw: "  settled ", want: StatusSettled, wantOK: true},
		{name: "unknown", raw: "whatever", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		paid  float64
		total float64
		want  BookingStatus
	}{
		{name: "explicit status wins over amounts", raw: "cancelled", paid: 100, total: 100, want: StatusCancelled},
		{name: "explicit status with legacy spelling", raw: "canceled", paid: 0, total: 100, want: StatusCancelled},
		{name: "no payment", raw: "", paid: 0, total: 100, want: StatusPending},
		{name: "negative paid treated as pending", raw: "", paid: -50, total: 100, want: StatusPending},
		{name: "partial payment", raw: "", paid: 40, total: 100, want: StatusAdvance},
		{name: "full payment", raw: "", paid: 100, total: 100, want: StatusPaid},
		{name: "overpayment", raw: "", paid: 150, total: 100, want: StatusPaid},
		{name: "paid with zero total", raw: "", paid: 50, total: 0, want: StatusSettled},
		{name: "unknown raw falls through to amounts", raw: "draft", paid: 40, total: 100, want: StatusAdvance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.raw, tt.paid, tt.total))
		})
	}
}

func TestDeriveStatusIsDeterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, StatusAdvance, DeriveStatus("", 30, 100))
	}
}
