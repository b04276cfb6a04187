package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

var catalogSlots = []domain.Slot{
	{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
}

func TestClaimedSlotIDs(t *testing.T) {
	tests := []struct {
		name string
		sel  DateSelection
		want []int64
	}{
		{
			name: "explicit slots",
			sel:  DateSelection{Date: "2025-06-01", SlotIDs: []int64{1, 3}},
			want: []int64{1, 3},
		},
		{
			name: "full day claims every slot",
			sel:  DateSelection{Date: "2025-06-01", IsFullDay: true},
			want: []int64{1, 2, 3, 4},
		},
		{
			name: "full day with single explicit slot claims only it",
			sel:  DateSelection{Date: "2025-06-01", IsFullDay: true, SlotIDs: []int64{2}},
			want: []int64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, claimedSlotIDs(tt.sel, catalogSlots))
		})
	}
}

func TestBuildBookingFlat(t *testing.T) {
	customer := &domain.Customer{ID: 10, Name: "Иванов", Phone: "+79990001122"}

	t.Run("single slot", func(t *testing.T) {
		req := Request{
			HallID:     1,
			CustomerID: 10,
			Dates:      []DateSelection{{Date: "2025-06-01", SlotIDs: []int64{2}}},
		}

		b := buildBooking(req, customer, domain.StatusPending, 0)

		assert.Empty(t, b.Rows)
		require.NotNil(t, b.SlotID)
		assert.Equal(t, int64(2), *b.SlotID)
		assert.False(t, b.IsFullDay)
		assert.Equal(t, "2025-06-01", b.EventDate.Format(domain.DateFormat))
		assert.Equal(t, "Иванов", b.CustomerName)
	})

	t.Run("full day", func(t *testing.T) {
		req := Request{
			HallID:     1,
			CustomerID: 10,
			Dates:      []DateSelection{{Date: "2025-06-01", IsFullDay: true}},
		}

		b := buildBooking(req, customer, domain.StatusPending, 0)

		assert.Empty(t, b.Rows)
		assert.Nil(t, b.SlotID)
		assert.True(t, b.IsFullDay)
	})

	t.Run("full day with explicit slot keeps both marks", func(t *testing.T) {
		req := Request{
			HallID:     1,
			CustomerID: 10,
			Dates:      []DateSelection{{Date: "2025-06-01", IsFullDay: true, SlotIDs: []int64{3}}},
		}

		b := buildBooking(req, customer, domain.StatusPending, 0)

		assert.Empty(t, b.Rows)
		require.NotNil(t, b.SlotID)
		assert.Equal(t, int64(3), *b.SlotID)
		assert.True(t, b.IsFullDay)
	})
}

func TestBuildBookingRows(t *testing.T) {
	customer := &domain.Customer{ID: 10}

	t.Run("multiple slots on one date", func(t *testing.T) {
		req := Request{
			HallID:     1,
			CustomerID: 10,
			Dates:      []DateSelection{{Date: "2025-06-01", SlotIDs: []int64{1, 3}}},
		}

		b := buildBooking(req, customer, domain.StatusPending, 0)

		require.Len(t, b.Rows, 2)
		assert.Equal(t, int64(1), *b.Rows[0].SlotID)
		assert.Equal(t, int64(3), *b.Rows[1].SlotID)
	})

	t.Run("multi date", func(t *testing.T) {
		req := Request{
			HallID:     1,
			CustomerID: 10,
			Dates: []DateSelection{
				{Date: "2025-06-01", SlotIDs: []int64{1}},
				{Date: "2025-06-02", IsFullDay: true},
			},
		}

		b := buildBooking(req, customer, domain.StatusAdvance, 50)

		require.Len(t, b.Rows, 2)
		assert.Equal(t, "2025-06-01", b.Rows[0].Date.Format(domain.DateFormat))
		assert.False(t, b.Rows[0].IsFullDay)
		assert.Equal(t, "2025-06-02", b.Rows[1].Date.Format(domain.DateFormat))
		assert.True(t, b.Rows[1].IsFullDay)
		assert.Nil(t, b.Rows[1].SlotID)

		// Основная дата - первая дата заявки
		assert.Equal(t, "2025-06-01", b.EventDate.Format(domain.DateFormat))
		assert.Equal(t, 50.0, b.PaidTotal)
	})
}

func TestDateBounds(t *testing.T) {
	dates := []DateSelection{
		{Date: "2025-06-15"},
		{Date: "2025-06-01"},
		{Date: "2025-06-30"},
	}

	min, max := dateBounds(dates)
	assert.Equal(t, "2025-06-01", min.Format(domain.DateFormat))
	assert.Equal(t, "2025-06-30", max.Format(domain.DateFormat))
}

func TestValidateRequest(t *testing.T) {
	valid := Request{
		HallID:      1,
		CustomerID:  10,
		TotalAmount: 100,
		Dates:       []DateSelection{{Date: "2025-06-01", SlotIDs: []int64{1}}},
	}
	require.NoError(t, validateRequest(valid))

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no hall", mutate: func(r *Request) { r.HallID = 0 }},
		{name: "no customer", mutate: func(r *Request) { r.CustomerID = 0 }},
		{name: "no dates", mutate: func(r *Request) { r.Dates = nil }},
		{name: "negative total", mutate: func(r *Request) { r.TotalAmount = -1 }},
		{name: "negative advance", mutate: func(r *Request) { r.AdvanceAmount = -1 }},
		{name: "bad date format", mutate: func(r *Request) { r.Dates = []DateSelection{{Date: "01.06.2025", SlotIDs: []int64{1}}} }},
		{name: "duplicate dates", mutate: func(r *Request) {
			r.Dates = []DateSelection{
				{Date: "2025-06-01", SlotIDs: []int64{1}},
				{Date: "2025-06-01", SlotIDs: []int64{2}},
			}
		}},
		{name: "empty day selection", mutate: func(r *Request) { r.Dates = []DateSelection{{Date: "2025-06-01"}} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
