package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testSlots(t *testing.T) []domain.Slot {
	t.Helper()
	return []domain.Slot{
		{ID: 1, Name: "Утро", StartTime: mustTime(t, "06:00"), EndTime: mustTime(t, "12:00")},
		{ID: 2, Name: "День", StartTime: mustTime(t, "12:00"), EndTime: mustTime(t, "17:00")},
		{ID: 3, Name: "Вечер", StartTime: mustTime(t, "17:00"), EndTime: mustTime(t, "22:00")},
		{ID: 4, Name: "Ночь", StartTime: mustTime(t, "22:00"), EndTime: mustTime(t, "06:00")},
	}
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}

func TestNormalizeSkipsCancelled(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), SlotID: ptr.Ptr(int64(1)), Status: domain.StatusCancelled},
		{ID: 2, HallID: 1, EventDate: date(t, "2025-06-01"), SlotID: ptr.Ptr(int64(2)), Status: domain.StatusPaid},
	}

	occ := Normalize(bookings, testSlots(t))

	require.Len(t, occ, 1)
	assert.Equal(t, int64(2), occ[0].BookingID)
	assert.Equal(t, int64(2), occ[0].SlotID)
}

func TestNormalizeExplicitSlotWinsOverFullDay(t *testing.T) {
	// Исторический двойной смысл: "весь день" с явным слотом занимает только его
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), SlotID: ptr.Ptr(int64(3)), IsFullDay: true, Status: domain.StatusPending},
	}

	occ := Normalize(bookings, testSlots(t))

	require.Len(t, occ, 1)
	assert.Equal(t, int64(3), occ[0].SlotID)
	assert.False(t, occ[0].IsAllDay())
}

func TestNormalizeFullDayWithoutSlot(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), IsFullDay: true, Status: domain.StatusPending},
	}

	occ := Normalize(bookings, testSlots(t))

	require.Len(t, occ, 1)
	assert.True(t, occ[0].IsAllDay())
	for _, slot := range testSlots(t) {
		assert.True(t, occ[0].Blocks(slot.ID))
	}
}

func TestNormalizeResolvesSlotByStartTime(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		wantSlot int64
	}{
		{name: "morning start", start: "10:00", wantSlot: 1},
		{name: "afternoon start", start: "12:00", wantSlot: 2},
		{name: "late night start maps to wrapping slot", start: "23:30", wantSlot: 4},
		{name: "after midnight start maps to wrapping slot", start: "02:00", wantSlot: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := mustTime(t, tt.start)
			bookings := []*domain.Booking{
				{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), StartTime: &start, Status: domain.StatusPending},
			}

			occ := Normalize(bookings, testSlots(t))

			require.Len(t, occ, 1)
			assert.Equal(t, tt.wantSlot, occ[0].SlotID)
		})
	}
}

func TestNormalizeUnresolvableFallsBackToAllDay(t *testing.T) {
	// Запись без слота, времени и флага консервативно блокирует весь день
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), Status: domain.StatusPending},
	}

	occ := Normalize(bookings, testSlots(t))

	require.Len(t, occ, 1)
	assert.True(t, occ[0].IsAllDay())
}

func TestNormalizeMultiDateRows(t *testing.T) {
	bookings := []*domain.Booking{
		{
			ID:     7,
			HallID: 1,
			Status: domain.StatusAdvance,
			Rows: []domain.BookingDate{
				{Date: date(t, "2025-06-01"), SlotID: ptr.Ptr(int64(1))},
				{Date: date(t, "2025-06-02"), SlotID: ptr.Ptr(int64(2))},
				{Date: date(t, "2025-06-03"), IsFullDay: true},
			},
		},
	}

	occ := Normalize(bookings, testSlots(t))

	require.Len(t, occ, 3)
	assert.Equal(t, "2025-06-01", occ[0].Date)
	assert.Equal(t, int64(1), occ[0].SlotID)
	assert.Equal(t, "2025-06-02", occ[1].Date)
	assert.Equal(t, int64(2), occ[1].SlotID)
	assert.Equal(t, "2025-06-03", occ[2].Date)
	assert.True(t, occ[2].IsAllDay())

	// Все факты указывают на одно бронирование
	for _, o := range occ {
		assert.Equal(t, int64(7), o.BookingID)
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, HallID: 1, EventDate: date(t, "2025-06-01"), SlotID: ptr.Ptr(int64(1)), Status: domain.StatusPaid},
		{ID: 2, HallID: 1, EventDate: date(t, "2025-06-01"), IsFullDay: true, Status: domain.StatusPending},
	}

	first := Normalize(bookings, testSlots(t))
	second := Normalize(bookings, testSlots(t))
	assert.Equal(t, first, second)
}
