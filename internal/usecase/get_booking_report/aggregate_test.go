package get_booking_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestAggregateEmpty(t *testing.T) {
	totals, byDay, byHall, byStatus, byCustomer := aggregate(nil)

	assert.Zero(t, totals.Count)
	assert.Empty(t, byDay)
	assert.Empty(t, byHall)
	assert.Empty(t, byCustomer)

	// Все четыре статуса присутствуют даже в пустом отчёте
	require.Len(t, byStatus, 4)
	assert.Equal(t, "pending", byStatus[0].Status)
	assert.Equal(t, "advance", byStatus[1].Status)
	assert.Equal(t, "paid", byStatus[2].Status)
	assert.Equal(t, "settled", byStatus[3].Status)
	for _, bucket := range byStatus {
		assert.Zero(t, bucket.Count)
	}
}

func TestAggregate(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, CustomerID: 10, CustomerName: "Иванов", EventDate: day(t, "2025-06-01"), TotalAmount: 100, PaidTotal: 0, Status: domain.StatusPending},
		{ID: 2, HallID: 1, CustomerID: 10, CustomerName: "Иванов", EventDate: day(t, "2025-06-01"), TotalAmount: 200, PaidTotal: 80, Status: domain.StatusAdvance},
		{ID: 3, HallID: 2, CustomerID: 20, CustomerName: "Петров", EventDate: day(t, "2025-06-02"), TotalAmount: 300, PaidTotal: 300, Status: domain.StatusPaid},
	}

	totals, byDay, byHall, byStatus, byCustomer := aggregate(bookings)

	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, 600.0, totals.TotalAmount)
	assert.Equal(t, 380.0, totals.PaidTotal)
	assert.Equal(t, 220.0, totals.PendingTotal)

	require.Len(t, byDay, 2)
	assert.Equal(t, "2025-06-01", byDay[0].Date)
	assert.Equal(t, 2, byDay[0].Count)
	assert.Equal(t, 300.0, byDay[0].TotalAmount)
	assert.Equal(t, "2025-06-02", byDay[1].Date)
	assert.Equal(t, 1, byDay[1].Count)

	require.Len(t, byHall, 2)
	assert.Equal(t, int64(1), byHall[0].HallID)
	assert.Equal(t, 2, byHall[0].Count)
	assert.Equal(t, int64(2), byHall[1].HallID)

	require.Len(t, byStatus, 4)
	assert.Equal(t, 1, byStatus[0].Count) // pending
	assert.Equal(t, 1, byStatus[1].Count) // advance
	assert.Equal(t, 1, byStatus[2].Count) // paid
	assert.Equal(t, 0, byStatus[3].Count) // settled присутствует с нулями

	require.Len(t, byCustomer, 2)
	assert.Equal(t, int64(10), byCustomer[0].CustomerID)
	assert.Equal(t, "Иванов", byCustomer[0].CustomerName)
	assert.Equal(t, 2, byCustomer[0].Count)
}

func TestAggregateDerivesStatusFromAmounts(t *testing.T) {
	// Сырой статус отсутствует: статус выводится из сумм
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, CustomerID: 10, EventDate: day(t, "2025-06-01"), TotalAmount: 100, PaidTotal: 40},
	}

	_, _, _, byStatus, _ := aggregate(bookings)

	assert.Equal(t, 1, byStatus[1].Count) // advance
}

func TestAggregateDeterministicOrder(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, HallID: 3, CustomerID: 30, EventDate: day(t, "2025-06-03"), TotalAmount: 1, Status: domain.StatusPending},
		{ID: 2, HallID: 1, CustomerID: 10, EventDate: day(t, "2025-06-01"), TotalAmount: 1, Status: domain.StatusPending},
		{ID: 3, HallID: 2, CustomerID: 20, EventDate: day(t, "2025-06-02"), TotalAmount: 1, Status: domain.StatusPending},
	}

	_, byDay, byHall, _, byCustomer := aggregate(bookings)

	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03"},
		[]string{byDay[0].Date, byDay[1].Date, byDay[2].Date})
	assert.Equal(t, []int64{1, 2, 3},
		[]int64{byHall[0].HallID, byHall[1].HallID, byHall[2].HallID})
	assert.Equal(t, []int64{10, 20, 30},
		[]int64{byCustomer[0].CustomerID, byCustomer[1].CustomerID, byCustomer[2].CustomerID})
}
