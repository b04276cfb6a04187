package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestSlotWindow(t *testing.T) {
	tests := []struct {
		name      string
		start     string
		end       string
		wantStart int
		wantEnd   int
	}{
		{name: "daytime window", start: "10:00", end: "14:00", wantStart: 600, wantEnd: 840},
		{name: "evening window", start: "17:00", end: "22:00", wantStart: 1020, wantEnd: 1320},
		{name: "wraps past midnight", start: "22:00", end: "06:00", wantStart: 1320, wantEnd: 1800},
		{name: "zero length treated as full wrap", start: "10:00", end: "10:00", wantStart: 600, wantEnd: 2040},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := Slot{ID: 1, StartTime: mustTime(t, tt.start), EndTime: mustTime(t, tt.end)}
			window, err := slot.Window()
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, window.StartMin)
			assert.Equal(t, tt.wantEnd, window.EndMin)
		})
	}
}

func TestSlotWindowContains(t *testing.T) {
	night := SlotWindow{StartMin: 1320, EndMin: 1800} // 22:00 - 06:00

	tests := []struct {
		name   string
		minute int
		want   bool
	}{
		{name: "before window", minute: 1000, want: false},
		{name: "at start", minute: 1320, want: true},
		{name: "before midnight", minute: 1439, want: true},
		{name: "just after midnight", minute: 0, want: true},
		{name: "early morning inside", minute: 300, want: true},
		{name: "at end boundary", minute: 360, want: false},
		{name: "morning after", minute: 400, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, night.Contains(tt.minute))
		})
	}
}

func TestOccupancyBlocks(t *testing.T) {
	allDay := Occupancy{HallID: 1, Date: "2025-06-01", SlotID: AllDaySlot}
	single := Occupancy{HallID: 1, Date: "2025-06-01", SlotID: 3}

	assert.True(t, allDay.IsAllDay())
	assert.True(t, allDay.Blocks(1))
	assert.True(t, allDay.Blocks(99))

	assert.False(t, single.IsAllDay())
	assert.True(t, single.Blocks(3))
	assert.False(t, single.Blocks(4))
}
