package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

func TestIsFree(t *testing.T) {
	occ := []domain.Occupancy{
		{HallID: 1, Date: "2025-06-01", SlotID: 2, BookingID: 10},
	}
	staged := []domain.StagedSelection{
		{HallID: 1, Date: "2025-06-01", SlotIDs: []int64{3}},
	}

	assert.True(t, IsFree(1, "2025-06-01", 1, occ, staged))
	assert.False(t, IsFree(1, "2025-06-01", 2, occ, staged), "занят бронированием")
	assert.False(t, IsFree(1, "2025-06-01", 3, occ, staged), "занят несохранённым выбором")

	// Другой зал и другая дата не затронуты
	assert.True(t, IsFree(2, "2025-06-01", 2, occ, staged))
	assert.True(t, IsFree(1, "2025-06-02", 2, occ, staged))
}

func TestSlotsWithStatusKeepsCatalogOrder(t *testing.T) {
	slots := testSlots(t)
	occ := []domain.Occupancy{
		{HallID: 1, Date: "2025-06-01", SlotID: 2, BookingID: 10, CustomerName: "Иванов"},
	}

	statuses := SlotsWithStatus(1, "2025-06-01", slots, occ, nil)

	require.Len(t, statuses, len(slots))
	for i, st := range statuses {
		assert.Equal(t, slots[i].ID, st.Slot.ID)
	}

	assert.True(t, statuses[0].IsFree)
	assert.False(t, statuses[1].IsFree)
	require.NotNil(t, statuses[1].Blocking)
	assert.Equal(t, int64(10), statuses[1].Blocking.BookingID)
	assert.Equal(t, "Иванов", statuses[1].Blocking.CustomerName)
}

func TestSlotsWithStatusMarksStaged(t *testing.T) {
	slots := testSlots(t)
	staged := []domain.StagedSelection{
		{HallID: 1, Date: "2025-06-01", SlotIDs: []int64{1}},
	}

	statuses := SlotsWithStatus(1, "2025-06-01", slots, nil, staged)

	assert.False(t, statuses[0].IsFree)
	assert.True(t, statuses[0].IsStaged)
	assert.Nil(t, statuses[0].Blocking)
	assert.True(t, statuses[1].IsFree)
}

func TestSummarizeDay(t *testing.T) {
	slots := testSlots(t)

	tests := []struct {
		name       string
		occ        []domain.Occupancy
		wantStatus DayStatus
		wantFree   int
	}{
		{
			name:       "no bookings",
			occ:        nil,
			wantStatus: DayFullyAvailable,
			wantFree:   4,
		},
		{
			name: "one slot taken",
			occ: []domain.Occupancy{
				{HallID: 1, Date: "2025-06-01", SlotID: 1, BookingID: 1},
			},
			wantStatus: DayPartiallyAvailable,
			wantFree:   3,
		},
		{
			name: "all day taken",
			occ: []domain.Occupancy{
				{HallID: 1, Date: "2025-06-01", SlotID: domain.AllDaySlot, BookingID: 1},
			},
			wantStatus: DayUnavailable,
			wantFree:   0,
		},
		{
			name: "every slot taken individually",
			occ: []domain.Occupancy{
				{HallID: 1, Date: "2025-06-01", SlotID: 1, BookingID: 1},
				{HallID: 1, Date: "2025-06-01", SlotID: 2, BookingID: 2},
				{HallID: 1, Date: "2025-06-01", SlotID: 3, BookingID: 3},
				{HallID: 1, Date: "2025-06-01", SlotID: 4, BookingID: 4},
			},
			wantStatus: DayUnavailable,
			wantFree:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := SummarizeDay(1, "2025-06-01", slots, tt.occ, nil)
			assert.Equal(t, tt.wantStatus, summary.Status)
			assert.Equal(t, tt.wantFree, summary.AvailableCount)
			assert.Equal(t, len(slots), summary.TotalCount)

			// Свободные и занятые в сумме дают весь каталог
			assert.Equal(t, summary.TotalCount, summary.AvailableCount+(summary.TotalCount-summary.AvailableCount))
		})
	}
}

func TestSummarizeDayEmptyCatalog(t *testing.T) {
	summary := SummarizeDay(1, "2025-06-01", nil, nil, nil)
	assert.Equal(t, DayUnavailable, summary.Status)
	assert.Equal(t, 0, summary.TotalCount)
}

func TestFreeSlotIDs(t *testing.T) {
	slots := testSlots(t)
	occ := []domain.Occupancy{
		{HallID: 1, Date: "2025-06-01", SlotID: 2, BookingID: 1},
		{HallID: 1, Date: "2025-06-01", SlotID: 4, BookingID: 2},
	}

	free := FreeSlotIDs(1, "2025-06-01", slots, occ, nil)
	assert.Equal(t, []int64{1, 3}, free)
}

func TestLegacyPeriods(t *testing.T) {
	periods := LegacyPeriods()
	require.Len(t, periods, 4)

	// Ночной период переходит через полночь
	night := periods[3]
	window, err := night.Window()
	require.NoError(t, err)
	assert.True(t, window.EndMin > domain.MinutesPerDay)
	assert.True(t, window.Contains(23*60))
	assert.True(t, window.Contains(2*60))
	assert.False(t, window.Contains(12*60))
}
