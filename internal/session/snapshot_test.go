package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

func TestSnapshotLifecycle(t *testing.T) {
	h := NewSnapshotHolder()

	_, state := h.Current()
	assert.Equal(t, SnapshotUnknown, state)
	assert.False(t, h.Ready())

	seq := h.Begin("hall:1:2025-06-01:2025-06-30")
	_, state = h.Current()
	assert.Equal(t, SnapshotLoading, state)

	occ := []domain.Occupancy{{HallID: 1, Date: "2025-06-01", SlotID: 2, BookingID: 10}}
	assert.True(t, h.Complete(seq, "hall:1:2025-06-01:2025-06-30", occ))

	snap, state := h.Current()
	assert.Equal(t, SnapshotReady, state)
	require.NotNil(t, snap)
	assert.Equal(t, occ, snap.Occupancies)
	assert.True(t, h.Ready())
}

func TestSnapshotStaleFetchDiscarded(t *testing.T) {
	h := NewSnapshotHolder()

	oldSeq := h.Begin("key")
	newSeq := h.Begin("key")

	fresh := []domain.Occupancy{{HallID: 1, Date: "2025-06-02", SlotID: 1, BookingID: 2}}
	require.True(t, h.Complete(newSeq, "key", fresh))

	// Старый ответ пришёл позже нового: отбрасывается целиком, не сливается
	stale := []domain.Occupancy{{HallID: 1, Date: "2025-06-01", SlotID: 1, BookingID: 1}}
	assert.False(t, h.Complete(oldSeq, "key", stale))

	snap, _ := h.Current()
	require.NotNil(t, snap)
	assert.Equal(t, fresh, snap.Occupancies)
}

func TestSnapshotFail(t *testing.T) {
	h := NewSnapshotHolder()

	seq := h.Begin("key")
	h.Fail(seq)

	// Отказ загрузки не трактуется как "все слоты свободны"
	_, state := h.Current()
	assert.Equal(t, SnapshotUnknown, state)
	assert.False(t, h.Ready())

	// Неудача устаревшей выборки не роняет подтверждённый снимок
	seq = h.Begin("key")
	require.True(t, h.Complete(seq, "key", nil))
	h.Fail(seq - 1)
	assert.True(t, h.Ready())
}

func TestSnapshotInvalidate(t *testing.T) {
	h := NewSnapshotHolder()

	seq := h.Begin("key")
	require.True(t, h.Complete(seq, "key", nil))
	require.True(t, h.Ready())

	h.Invalidate()

	snap, state := h.Current()
	assert.Nil(t, snap)
	assert.Equal(t, SnapshotUnknown, state)
	assert.False(t, h.Ready())
}
